package repository

import "github.com/spicepatrao/storefront-backend/models"

// SeedProducts is the static catalog installed the first time the
// service starts with no data snapshot.
func SeedProducts() []models.Product {
	return []models.Product{
		{
			ID: "turmeric-1", NameEn: "Turmeric Powder", NameHi: "हल्दी पाउडर",
			Image:     "https://images.unsplash.com/photo-1615485500704-8e990f9900f7?q=80&w=800",
			Price100g: 40, Price1kg: 320, Stock: 120,
			Category:    models.CategoryPowder,
			Description: "Single-origin Salem turmeric, slow-ground on stone chakki to keep the curcumin and volatile oils intact.",
			Rating:      4.8, Reviews: 312, IsTopSeller: true,
		},
		{
			ID: "chilli-1", NameEn: "Kashmiri Chilli Powder", NameHi: "कश्मीरी मिर्च पाउडर",
			Image:     "https://images.unsplash.com/photo-1583454110551-21f2fa2afe61?q=80&w=800",
			Price100g: 60, Price1kg: 520, Stock: 85,
			Category:    models.CategoryPowder,
			Description: "Deep crimson colour with gentle heat. Sun-dried Kashmiri chillies ground in small batches.",
			Rating:      4.7, Reviews: 204, IsTopSeller: true,
		},
		{
			ID: "coriander-1", NameEn: "Coriander Powder", NameHi: "धनिया पाउडर",
			Image:     "https://images.unsplash.com/photo-1509358271058-acd22cc93898?q=80&w=800",
			Price100g: 32, Price1kg: 260, Stock: 140,
			Category:    models.CategoryPowder,
			Description: "Eagle variety coriander from Rajasthan, roasted lightly before grinding for a citrusy finish.",
			Rating:      4.6, Reviews: 158,
		},
		{
			ID: "cumin-1", NameEn: "Cumin Seeds", NameHi: "जीरा",
			Image:     "https://images.unsplash.com/photo-1596040033229-a9821ebd058d?q=80&w=800",
			Price100g: 45, Price1kg: 390, Stock: 96,
			Category:    models.CategoryWhole,
			Description: "Bold Unjha cumin seeds, hand-sieved for uniform size and a clean earthy aroma.",
			Rating:      4.7, Reviews: 186,
		},
		{
			ID: "cardamom-1", NameEn: "Green Cardamom", NameHi: "हरी इलायची",
			Image:     "https://images.unsplash.com/photo-1601742638535-ce60a92d0e04?q=80&w=800",
			Price100g: 280, Price1kg: 2600, Stock: 32,
			Category:    models.CategoryWhole,
			Description: "8mm bold Idukki cardamom pods with deep green skins and intensely sweet camphor notes.",
			Rating:      4.9, Reviews: 267, IsNew: true,
		},
		{
			ID: "pepper-1", NameEn: "Black Peppercorns", NameHi: "काली मिर्च",
			Image:     "https://images.unsplash.com/photo-1599909533730-f9ab29b39b39?q=80&w=800",
			Price100g: 95, Price1kg: 850, Stock: 64,
			Category:    models.CategoryWhole,
			Description: "Tellicherry garbled extra-bold peppercorns, matured on the vine for maximum piperine bite.",
			Rating:      4.8, Reviews: 221,
		},
		{
			ID: "garam-masala-1", NameEn: "Garam Masala", NameHi: "गरम मसाला",
			Image:     "https://images.unsplash.com/photo-1532336414038-cf19250c5757?q=80&w=800",
			Price100g: 75, Price1kg: 640, Stock: 110,
			Category:    models.CategoryBlend,
			Description: "A family recipe of fourteen whole spices, dry-roasted and ground the same day it ships.",
			Rating:      4.9, Reviews: 345, IsTopSeller: true,
		},
		{
			ID: "chai-masala-1", NameEn: "Chai Masala", NameHi: "चाय मसाला",
			Image:     "https://images.unsplash.com/photo-1571934811356-5cc061b6821f?q=80&w=800",
			Price100g: 90, Price1kg: 780, Stock: 58,
			Category:    models.CategoryBlend,
			Description: "Cardamom-forward blend with dry ginger, cinnamon and a whisper of black pepper for winter chai.",
			Rating:      4.5, Reviews: 132, IsNew: true,
		},
	}
}

// SeedUsers installs the built-in demo accounts: two admins and one
// verified customer.
func SeedUsers() []models.User {
	return []models.User{
		{ID: "admin1", Name: "Admin User", Email: "admin@spice.com", Role: models.RoleAdmin, IsVerified: true},
		{ID: "admin-viraj", Name: "Viraj Admin", Email: "yedviaviraj@gmail.com", Role: models.RoleAdmin, IsVerified: true},
		{ID: "user1", Name: "Aditya Patel", Email: "user@example.com", Role: models.RoleCustomer, IsVerified: true, Mobile: "9876543210"},
	}
}
