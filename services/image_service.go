package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/spicepatrao/storefront-backend/models"
	"github.com/spicepatrao/storefront-backend/repository"
)

// GenerateImageRequest is the contract with the generative-image
// collaborator: a textual prompt and an optional reference PNG whose
// packaging style the result should follow.
type GenerateImageRequest struct {
	Prompt         string
	ReferenceImage []byte
}

// ImageGenerator produces a PNG for a prompt, or an error. The concrete
// implementation is the Gemini client; tests substitute fakes.
type ImageGenerator interface {
	Generate(ctx context.Context, req GenerateImageRequest) ([]byte, error)
}

// GenerateAllResult summarizes a batch run over the catalog.
type GenerateAllResult struct {
	Generated int               `json:"generated"`
	Failed    int               `json:"failed"`
	Errors    map[string]string `json:"errors,omitempty"`
}

// ImageService replaces product images with AI-generated packaging
// shots. A product with a generation in flight rejects further requests
// until the call settles; there is no cancellation, a slow response is
// still applied when it arrives.
type ImageService struct {
	products  repository.ProductRepository
	generator ImageGenerator
	limiter   *rate.Limiter
	// delay between calls when regenerating the whole catalog
	batchDelay time.Duration
	logger     *zap.Logger

	mu       sync.Mutex
	inFlight map[string]bool
	batchRun bool
}

func NewImageService(products repository.ProductRepository, generator ImageGenerator, batchDelay time.Duration, logger *zap.Logger) *ImageService {
	if batchDelay <= 0 {
		batchDelay = time.Second
	}
	return &ImageService{
		products:   products,
		generator:  generator,
		limiter:    rate.NewLimiter(rate.Every(batchDelay), 1),
		batchDelay: batchDelay,
		logger:     logger,
		inFlight:   make(map[string]bool),
	}
}

// Generating reports whether the product currently has a generation in
// flight, so its action control can be disabled.
func (s *ImageService) Generating(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight[productID]
}

func (s *ImageService) begin(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[productID] {
		return false
	}
	s.inFlight[productID] = true
	return true
}

func (s *ImageService) end(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, productID)
}

// buildPrompt describes the branded pouch shot, optionally extended with
// strict reference-image instructions.
func buildPrompt(p *models.Product, hasReference bool) string {
	prompt := fmt.Sprintf(`A photorealistic product shot of a white stand-up spice pouch branded "SpicePatrao". `+
		`The pouch features clear, bold typography saying %q and %q. `+
		`The bottom half of the pouch has an orange/terracotta pattern. `+
		`Next to the pouch is a small wooden bowl filled with fresh %s. `+
		`The background is a dark, warm, textured wood surface. `+
		`Cinematic lighting, high resolution, 4k.`, p.NameEn, p.NameHi, p.NameEn)
	if hasReference {
		prompt += " Use the provided image as a strict reference for the packaging style, lighting, composition, and background." +
			" Only change the text on the packet and the spice inside the bowl to match the product described."
	}
	return prompt
}

// GenerateProductImage generates a packaging shot for one product and
// stores it as a data URI on the catalog entry. On failure the product
// image is left unchanged.
func (s *ImageService) GenerateProductImage(ctx context.Context, productID string, referenceImage []byte) (*models.Product, *ServiceError) {
	product, err := s.products.GetByID(ctx, productID)
	if err == repository.ErrProductNotFound {
		return nil, &ServiceError{StatusCode: 404, Message: "Product not found"}
	}
	if err != nil {
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to load product"}
	}

	if !s.begin(productID) {
		return nil, &ServiceError{StatusCode: 409, Message: "Image generation already in progress for this product"}
	}
	defer s.end(productID)

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, &ServiceError{StatusCode: 500, Message: "Image generation interrupted"}
	}

	png, err := s.generator.Generate(ctx, GenerateImageRequest{
		Prompt:         buildPrompt(product, len(referenceImage) > 0),
		ReferenceImage: referenceImage,
	})
	if err != nil {
		s.logger.Error("Image generation failed",
			zap.String("product_id", productID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 502, Message: "Image generation failed"}
	}

	product.Image = "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
	if err := s.products.Update(ctx, product); err != nil {
		// The product may have been deleted while the call was pending.
		s.logger.Error("Generated image not applied",
			zap.String("product_id", productID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to store generated image"}
	}

	s.logger.Info("Product image generated", zap.String("product_id", productID))
	return product, nil
}

// GenerateAllImages walks the catalog sequentially with a fixed delay
// between calls, continuing past per-product failures. Only one batch
// run at a time.
func (s *ImageService) GenerateAllImages(ctx context.Context, referenceImage []byte) (*GenerateAllResult, *ServiceError) {
	s.mu.Lock()
	if s.batchRun {
		s.mu.Unlock()
		return nil, &ServiceError{StatusCode: 409, Message: "A catalog-wide generation is already running"}
	}
	s.batchRun = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.batchRun = false
		s.mu.Unlock()
	}()

	products, err := s.products.GetAll(ctx)
	if err != nil {
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to load catalog"}
	}

	result := &GenerateAllResult{Errors: make(map[string]string)}
	for i, p := range products {
		if _, svcErr := s.GenerateProductImage(ctx, p.ID, referenceImage); svcErr != nil {
			result.Failed++
			result.Errors[p.ID] = svcErr.Message
		} else {
			result.Generated++
		}

		if i < len(products)-1 {
			select {
			case <-ctx.Done():
				return result, &ServiceError{StatusCode: 500, Message: "Batch generation interrupted"}
			case <-time.After(s.batchDelay):
			}
		}
	}
	if len(result.Errors) == 0 {
		result.Errors = nil
	}
	return result, nil
}
