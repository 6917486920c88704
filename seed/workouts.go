package seed

import "github.com/apakhome20-stack/efebem/models"

type exercise struct {
	name      string
	kcalMin   float64
	category  string
	intensity string
}

var exercises = []exercise{
	// Kardiyo Egzersizleri
	{"Koşu (Yavaş - 8 km/sa)", 8, "Kardiyo", "Orta"},
	{"Koşu (Orta - 10 km/sa)", 10, "Kardiyo", "Yüksek"},
	{"Koşu (Hızlı - 12+ km/sa)", 13, "Kardiyo", "Çok Yüksek"},
	{"Yürüyüş (Yavaş)", 3, "Kardiyo", "Düşük"},
	{"Yürüyüş (Hızlı)", 5, "Kardiyo", "Orta"},
	{"Bisiklet (Yavaş)", 5, "Kardiyo", "Orta"},
	{"Bisiklet (Orta)", 8, "Kardiyo", "Yüksek"},
	{"Bisiklet (Hızlı)", 12, "Kardiyo", "Çok Yüksek"},
	{"Yüzme (Yavaş)", 6, "Kardiyo", "Orta"},
	{"Yüzme (Hızlı)", 11, "Kardiyo", "Yüksek"},
	{"İp Atlama", 12, "Kardiyo", "Yüksek"},
	{"Eliptik Bisiklet", 9, "Kardiyo", "Yüksek"},
	{"Merdiven Çıkma", 10, "Kardiyo", "Yüksek"},
	{"Dans", 6, "Kardiyo", "Orta"},
	{"Aerobik", 7, "Kardiyo", "Yüksek"},
	{"Zumba", 8, "Kardiyo", "Yüksek"},
	{"Kick Boks", 10, "Kardiyo", "Yüksek"},
	{"Boks", 9, "Kardiyo", "Yüksek"},

	// Kuvvet Antrenmanları
	{"Ağırlık Kaldırma (Hafif)", 3, "Kuvvet", "Orta"},
	{"Ağırlık Kaldırma (Ağır)", 6, "Kuvvet", "Yüksek"},
	{"Bench Press", 5, "Kuvvet", "Yüksek"},
	{"Squat", 6, "Kuvvet", "Yüksek"},
	{"Deadlift", 7, "Kuvvet", "Çok Yüksek"},
	{"Shoulder Press", 4, "Kuvvet", "Orta"},
	{"Bicep Curl", 3, "Kuvvet", "Orta"},
	{"Tricep Extension", 3, "Kuvvet", "Orta"},
	{"Lat Pulldown", 4, "Kuvvet", "Orta"},
	{"Leg Press", 5, "Kuvvet", "Yüksek"},
	{"Leg Curl", 4, "Kuvvet", "Orta"},
	{"Leg Extension", 4, "Kuvvet", "Orta"},
	{"Cable Crossover", 4, "Kuvvet", "Orta"},
	{"Pull-up", 6, "Kuvvet", "Yüksek"},
	{"Dips", 5, "Kuvvet", "Yüksek"},

	// Vücut Ağırlığı Egzersizleri
	{"Şınav", 7, "Vücut Ağırlığı", "Yüksek"},
	{"Mekik", 6, "Vücut Ağırlığı", "Orta"},
	{"Plank", 5, "Vücut Ağırlığı", "Orta"},
	{"Burpee", 10, "Vücut Ağırlığı", "Çok Yüksek"},
	{"Mountain Climber", 8, "Vücut Ağırlığı", "Yüksek"},
	{"Jumping Jacks", 8, "Vücut Ağırlığı", "Yüksek"},
	{"Squat (Vücut Ağırlığı)", 5, "Vücut Ağırlığı", "Orta"},
	{"Lunges", 6, "Vücut Ağırlığı", "Orta"},

	// HIIT ve CrossFit
	{"HIIT", 12, "HIIT", "Çok Yüksek"},
	{"Tabata", 13, "HIIT", "Çok Yüksek"},
	{"CrossFit", 11, "CrossFit", "Çok Yüksek"},
	{"Circuit Training", 9, "HIIT", "Yüksek"},

	// Yoga ve Pilates
	{"Yoga (Hatha)", 3, "Yoga", "Düşük"},
	{"Yoga (Vinyasa)", 5, "Yoga", "Orta"},
	{"Yoga (Ashtanga)", 6, "Yoga", "Yüksek"},
	{"Pilates", 4, "Pilates", "Orta"},
	{"Pilates (Makine)", 5, "Pilates", "Orta"},

	// Sporlar
	{"Futbol", 9, "Takım Sporu", "Yüksek"},
	{"Basketbol", 8, "Takım Sporu", "Yüksek"},
	{"Voleybol", 6, "Takım Sporu", "Orta"},
	{"Tenis", 7, "Raket Sporu", "Yüksek"},
	{"Badminton", 6, "Raket Sporu", "Orta"},
	{"Masa Tenisi", 4, "Raket Sporu", "Orta"},
	{"Kayak", 7, "Kış Sporu", "Yüksek"},
	{"Snowboard", 6, "Kış Sporu", "Yüksek"},

	// Diğer Aktiviteler
	{"Bahçe İşleri", 4, "Aktivite", "Orta"},
	{"Temizlik", 3, "Aktivite", "Düşük"},
	{"Çim Biçme", 5, "Aktivite", "Orta"},
	{"Kar Küreme", 7, "Aktivite", "Yüksek"},
}

// Exercises returns the workout reference table.
func Exercises() []models.WorkoutExercise {
	out := make([]models.WorkoutExercise, 0, len(exercises))
	for _, e := range exercises {
		out = append(out, models.WorkoutExercise{
			ID:                Slug(e.name),
			Name:              e.name,
			CaloriesPerMinute: e.kcalMin,
			Category:          e.category,
			Intensity:         e.intensity,
		})
	}
	return out
}
