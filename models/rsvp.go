package models

import (
	"time"
)

// AttendingStatus olası katılım cevaplarını tanımlar. Alan serbest metin
// olarak da kabul edilir; sabitler istemci formunun kullandığı değerlerdir.
type AttendingStatus string

const (
	AttendingYes   AttendingStatus = "yes"   // Katılacak
	AttendingNo    AttendingStatus = "no"    // Katılmayacak
	AttendingMaybe AttendingStatus = "maybe" // Belki katılacak
)

// RSVP bir misafirin gönderdiği katılım cevabını temsil eder.
// Kayıtlar oluşturulduktan sonra değiştirilemez; güncelleme veya silme
// yolu yoktur.
type RSVP struct {
	ID         string    `gorm:"type:varchar(36);primaryKey" json:"id" bson:"-"`
	Name       string    `gorm:"type:varchar(150);not null" json:"name" bson:"name"`
	Email      string    `gorm:"type:varchar(150)" json:"email" bson:"email"`
	Phone      string    `gorm:"type:varchar(30)" json:"phone" bson:"phone"`
	Attending  string    `gorm:"type:varchar(20)" json:"attending" bson:"attending"`
	GuestCount int       `gorm:"not null" json:"guestCount" bson:"guestCount"`
	Meal       string    `gorm:"type:varchar(100)" json:"meal" bson:"meal"`
	Allergies  string    `gorm:"type:varchar(255)" json:"allergies" bson:"allergies"`
	Message    string    `gorm:"type:text" json:"message" bson:"message"`
	CreatedAt  time.Time `gorm:"index:idx_rsvps_created_at,sort:desc" json:"createdAt" bson:"createdAt"`
	IP         string    `gorm:"type:varchar(45)" json:"ip" bson:"ip"`
}

// TableName GORM tablo adını sabitler.
func (RSVP) TableName() string { return "rsvps" }

// SubmitRequest public formdan gelen ham gönderimdir. GuestCount istemciden
// sayı ya da metin olarak gelebildiği için doğrulama katmanında çevrilir.
type SubmitRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Attending  string `json:"attending"`
	GuestCount any    `json:"guestCount"`
	Meal       string `json:"meal"`
	Allergies  string `json:"allergies"`
	Message    string `json:"message"`
}
