// Package seed holds the static reference tables loaded by cmd/seed.
// Values are per 100g (foods) and per minute (exercises).
package seed

import (
	"strings"

	"github.com/apakhome20-stack/efebem/models"
)

type food struct {
	name     string
	kcal     float64
	protein  float64
	carbs    float64
	fat      float64
	category string
}

var foods = []food{
	// Ekmek ve Tahıllar
	{"Beyaz Ekmek", 265, 9, 49, 3.2, "Ekmek"},
	{"Tam Buğday Ekmeği", 247, 13, 41, 3.4, "Ekmek"},
	{"Çavdar Ekmeği", 259, 8.5, 48, 3.3, "Ekmek"},
	{"Simit", 420, 11, 68, 11, "Ekmek"},
	{"Pide", 275, 8, 50, 4.5, "Ekmek"},
	{"Lavaş", 258, 8.7, 50, 1.2, "Ekmek"},
	{"Yufka", 300, 9, 62, 2, "Ekmek"},
	{"Bulgur Pilavı", 342, 12, 76, 1.3, "Tahıl"},
	{"Pirinç Pilavı", 130, 2.7, 28, 0.3, "Tahıl"},
	{"Makarna", 158, 5.8, 31, 0.9, "Tahıl"},

	// Ana Yemekler - Et
	{"Adana Kebap", 280, 18, 2, 23, "Et"},
	{"Urfa Kebap", 260, 19, 1.5, 20, "Et"},
	{"Şiş Kebap", 220, 25, 0, 13, "Et"},
	{"İskender Kebap", 195, 16, 10, 11, "Et"},
	{"Tavuk Şiş", 165, 31, 0, 3.6, "Tavuk"},
	{"Tavuk Döner", 178, 27, 5, 6, "Tavuk"},
	{"Et Döner", 265, 20, 3, 19, "Et"},
	{"Köfte", 255, 17, 8, 17, "Et"},
	{"İnegöl Köfte", 280, 18, 6, 20, "Et"},
	{"Kuru Fasulye", 127, 8.7, 23, 0.5, "Baklagil"},
	{"Kuzu Tandır", 295, 25, 0, 21, "Et"},
	{"Ali Nazik Kebap", 180, 14, 8, 11, "Et"},
	{"Hünkar Beğendi", 150, 12, 9, 8, "Et"},

	// Balık ve Deniz Ürünleri
	{"Hamsi Tava", 185, 18, 8, 9, "Balık"},
	{"Levrek Izgara", 97, 18, 0, 2, "Balık"},
	{"Çupra Izgara", 115, 20, 0, 3.5, "Balık"},
	{"Somon Balığı", 208, 20, 0, 13, "Balık"},
	{"Palamut", 158, 24, 0, 6.3, "Balık"},
	{"Midye Dolma", 172, 10, 24, 4, "Deniz Ürünleri"},

	// Zeytinyağlılar
	{"İmam Bayıldı", 120, 2, 12, 7, "Zeytinyağlı"},
	{"Zeytinyağlı Yaprak Sarma", 95, 2.5, 15, 3, "Zeytinyağlı"},
	{"Zeytinyağlı Fasulye", 85, 3, 12, 3, "Zeytinyağlı"},
	{"Zeytinyağlı Enginar", 68, 2.8, 10, 2, "Zeytinyağlı"},
	{"Patlıcan Musakka", 140, 5, 10, 9, "Zeytinyağlı"},

	// Çorbalar
	{"Mercimek Çorbası", 95, 5, 16, 1.5, "Çorba"},
	{"Ezogelin Çorbası", 88, 4, 15, 1.2, "Çorba"},
	{"Tarhana Çorbası", 92, 4.5, 16, 1.5, "Çorba"},
	{"İşkembe Çorbası", 108, 11, 7, 4, "Çorba"},
	{"Yayla Çorbası", 65, 3, 10, 1.5, "Çorba"},
	{"Domates Çorbası", 74, 2, 13, 1.8, "Çorba"},

	// Börekler ve Hamur İşleri
	{"Su Böreği", 195, 7, 22, 9, "Börek"},
	{"Kol Böreği", 310, 8, 28, 18, "Börek"},
	{"Sigara Böreği", 290, 9, 25, 17, "Börek"},
	{"Gözleme (Peynirli)", 235, 9, 30, 9, "Börek"},
	{"Lahmacun", 260, 10, 35, 9, "Hamur İşi"},
	{"Pide (Kıymalı)", 290, 12, 38, 11, "Hamur İşi"},
	{"Mantı", 165, 8, 24, 4, "Hamur İşi"},

	// Sebze Yemekleri
	{"Karnıyarık", 158, 6, 12, 10, "Sebze"},
	{"Türlü", 85, 3, 14, 2, "Sebze"},
	{"Dolma (Etli)", 145, 7, 16, 6, "Sebze"},
	{"Bamya", 92, 4, 14, 2.5, "Sebze"},
	{"Ispanak Yemeği", 68, 4, 8, 2.5, "Sebze"},
	{"Pırasa Yemeği", 75, 2.5, 12, 2, "Sebze"},

	// Salatalar
	{"Çoban Salata", 45, 1.5, 8, 1.2, "Salata"},
	{"Mevsim Salata", 35, 1.2, 7, 0.5, "Salata"},
	{"Çingene Salatası", 52, 2, 9, 1.5, "Salata"},
	{"Piyaz", 125, 5, 20, 3, "Salata"},
	{"Atom", 58, 2.5, 10, 1.5, "Salata"},

	// Mezeler
	{"Haydari", 145, 6, 8, 10, "Meze"},
	{"Cacık", 48, 2.5, 4, 2.5, "Meze"},
	{"Humus", 166, 8, 14, 10, "Meze"},
	{"Babaganuş", 105, 2.5, 12, 6, "Meze"},
	{"Ezme", 65, 2, 12, 1.5, "Meze"},
	{"Tarama", 185, 5, 10, 14, "Meze"},

	// Süt Ürünleri
	{"Beyaz Peynir", 264, 18, 1.5, 21, "Süt Ürünü"},
	{"Kaşar Peyniri", 330, 23, 0, 27, "Süt Ürünü"},
	{"Lor Peyniri", 166, 13, 3, 11, "Süt Ürünü"},
	{"Süzme Yoğurt", 85, 8, 6, 3.5, "Süt Ürünü"},
	{"Ayran", 36, 1.7, 4.5, 1, "Süt Ürünü"},
	{"Tam Yağlı Süt", 61, 3.2, 4.8, 3.3, "Süt Ürünü"},

	// Tatlılar
	{"Baklava", 428, 7, 51, 22, "Tatlı"},
	{"Künefe", 385, 8, 48, 18, "Tatlı"},
	{"Revani", 340, 5, 52, 12, "Tatlı"},
	{"Sütlaç", 130, 4, 22, 3, "Tatlı"},
	{"Kazandibi", 195, 5, 28, 7, "Tatlı"},
	{"Lokma", 325, 5, 48, 14, "Tatlı"},
	{"Tulumba Tatlısı", 330, 4, 50, 13, "Tatlı"},

	// İçecekler
	{"Türk Kahvesi", 12, 0.5, 2, 0.5, "İçecek"},
	{"Çay (Şekersiz)", 1, 0, 0.3, 0, "İçecek"},
	{"Şalgam Suyu", 12, 0.5, 2.5, 0, "İçecek"},
	{"Boza", 95, 1.5, 21, 0.5, "İçecek"},
	{"Sahlep", 75, 3, 13, 1.5, "İçecek"},

	// Fast Food (Türk Stili)
	{"Döner Dürüm", 215, 15, 20, 9, "Fast Food"},
	{"Tantuni", 190, 14, 18, 8, "Fast Food"},
	{"Kokoreç", 265, 18, 3, 20, "Fast Food"},
	{"Islak Hamburger", 240, 12, 28, 9, "Fast Food"},

	// Kahvaltılık
	{"Menemen", 156, 8, 6, 11, "Kahvaltı"},
	{"Sucuklu Yumurta", 285, 16, 2, 24, "Kahvaltı"},
	{"Kavurma", 380, 22, 0, 32, "Kahvaltı"},
	{"Tahin-Pekmez", 465, 12, 48, 26, "Kahvaltı"},
	{"Bal", 304, 0.3, 82, 0, "Kahvaltı"},
	{"Reçel", 278, 0.4, 69, 0.1, "Kahvaltı"},
	{"Zeytin (Siyah)", 115, 0.8, 6, 11, "Kahvaltı"},
	{"Zeytin (Yeşil)", 145, 1, 4, 15, "Kahvaltı"},

	// Atıştırmalıklar
	{"Fındık", 628, 15, 17, 61, "Atıştırmalık"},
	{"Ceviz", 654, 15, 14, 65, "Atıştırmalık"},
	{"Antep Fıstığı", 562, 20, 28, 45, "Atıştırmalık"},
	{"Leblebi", 368, 20, 61, 6, "Atıştırmalık"},
	{"Çerez Karışımı", 520, 17, 30, 38, "Atıştırmalık"},
}

// Foods returns the Turkish food reference table, keyed by a slug of the
// food name.
func Foods() []models.TurkishFood {
	out := make([]models.TurkishFood, 0, len(foods))
	for _, f := range foods {
		out = append(out, models.TurkishFood{
			ID:              Slug(f.name),
			Name:            f.name,
			CaloriesPer100g: f.kcal,
			ProteinPer100g:  f.protein,
			CarbsPer100g:    f.carbs,
			FatPer100g:      f.fat,
			Category:        f.category,
		})
	}
	return out
}

// Slug normalizes a display name into a stable id.
func Slug(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "(", "")
	s = strings.ReplaceAll(s, ")", "")
	return s
}
