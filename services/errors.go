package services

import "errors"

// User-facing errors keep the product's Turkish wording; controllers map
// them onto HTTP statuses with errors.Is.
var (
	ErrDuplicateEmail         = errors.New("Bu email adresi zaten kayıtlı")
	ErrInvalidCredentials     = errors.New("Email veya şifre hatalı")
	ErrOAuthAccount           = errors.New("Bu hesap Google ile oluşturulmuş. Lütfen Google ile giriş yapın")
	ErrInvalidExternalSession = errors.New("Invalid session ID")
	ErrInvalidSession         = errors.New("Invalid or expired session")
	ErrUserNotFound           = errors.New("User not found")
	ErrFoodNotFound           = errors.New("Yemek bulunamadı")
	ErrInvalidDate            = errors.New("Geçersiz tarih")
	ErrInvalidActivityLevel   = errors.New("Geçersiz aktivite seviyesi")
	ErrAnalysis               = errors.New("Analiz hatası")
)
