// Package pricing validates discount tokens and derives effective prices.
// It never computes tax; the 18% checkout surcharge stays with the caller so
// the engine is tax-policy-agnostic.
package pricing

import (
	"errors"
	"time"

	"github.com/SacredMindInfotech/SacredMind-sub001/models"

	"gorm.io/gorm"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrTokenAttached = errors.New("course already has an active discount token")
	ErrBadPercentage = errors.New("discount percentage must be between 0 and 100")
)

// Quote is the price derivation for one course. An expired, inactive or
// ineligible token is expected storefront behavior, not an error: the quote
// simply carries the full price and a zero discount.
type Quote struct {
	DiscountedPrice int64 `json:"discounted_price"`
	DiscountAmount  int64 `json:"discount_amount"`
}

// TokenForCourse returns the token attached to the course that is active and
// unexpired at now, or nil when the course has none.
func TokenForCourse(db *gorm.DB, courseID uint, now time.Time) (*models.DiscountToken, error) {
	var token models.DiscountToken
	err := db.Model(&models.DiscountToken{}).
		Joins("JOIN discount_token_courses ON discount_token_courses.discount_token_id = discount_tokens.id").
		Where("discount_token_courses.course_id = ? AND discount_token_courses.is_deleted = ?", courseID, false).
		Where("discount_tokens.is_active = ? AND discount_tokens.is_deleted = ?", true, false).
		Where("discount_tokens.expires_at > ?", now).
		First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &token, nil
}

// EffectivePrice derives the price of a course at now. With a valid token the
// discounted price is base × (1 − pct/100) rounded half-up to the nearest
// whole currency unit; otherwise it is the base price unchanged.
func EffectivePrice(db *gorm.DB, courseID uint, basePrice int64, now time.Time) (Quote, error) {
	token, err := TokenForCourse(db, courseID, now)
	if err != nil {
		return Quote{}, err
	}
	if token == nil {
		return Quote{DiscountedPrice: basePrice}, nil
	}
	return Apply(basePrice, token.DiscountPercentage), nil
}

// Apply computes the quote for a percentage already known to be valid.
func Apply(basePrice int64, percentage int) Quote {
	if percentage <= 0 || percentage > 100 || basePrice <= 0 {
		return Quote{DiscountedPrice: basePrice}
	}
	discounted := (basePrice*int64(100-percentage) + 50) / 100
	return Quote{
		DiscountedPrice: discounted,
		DiscountAmount:  basePrice - discounted,
	}
}

// CourseOffer is the storefront on-offer projection for one course.
type CourseOffer struct {
	CourseID uint  `json:"course_id"`
	Quote
	OnOffer bool `json:"on_offer"`
}

// OnOffer batch-quotes a course set. A course is on offer iff its discount
// amount is positive and it is published; both are evaluated per course.
func OnOffer(db *gorm.DB, courses []models.Course, now time.Time) (map[uint]CourseOffer, error) {
	offers := make(map[uint]CourseOffer, len(courses))
	for _, course := range courses {
		quote, err := EffectivePrice(db, course.ID, course.Price, now)
		if err != nil {
			return nil, err
		}
		offers[course.ID] = CourseOffer{
			CourseID: course.ID,
			Quote:    quote,
			OnOffer:  quote.DiscountAmount > 0 && course.IsPublished,
		}
	}
	return offers, nil
}

// CreateToken mints a discount token for a set of eligible courses. Courses
// that already carry an active, unexpired token are rejected rather than
// combined; tokens never stack.
func CreateToken(db *gorm.DB, code string, percentage int, expiresAt time.Time, courseIDs []uint) (*models.DiscountToken, error) {
	if percentage < 0 || percentage > 100 {
		return nil, ErrBadPercentage
	}

	now := time.Now()
	for _, courseID := range courseIDs {
		var course models.Course
		if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
			return nil, ErrNotFound
		}
		existing, err := TokenForCourse(db, courseID, now)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrTokenAttached
		}
	}

	token := models.DiscountToken{
		Token:              code,
		DiscountPercentage: percentage,
		ExpiresAt:          expiresAt,
		IsActive:           true,
	}

	tx := db.Begin()
	if err := tx.Create(&token).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	for _, courseID := range courseIDs {
		link := models.DiscountTokenCourse{DiscountTokenID: token.ID, CourseID: courseID}
		if err := tx.Create(&link).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &token, nil
}

// AttachCourse makes one more course eligible for an existing token.
func AttachCourse(db *gorm.DB, tokenID, courseID uint) error {
	var token models.DiscountToken
	if err := db.Where("id = ? AND is_deleted = ?", tokenID, false).First(&token).Error; err != nil {
		return ErrNotFound
	}
	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return ErrNotFound
	}

	existing, err := TokenForCourse(db, courseID, time.Now())
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrTokenAttached
	}

	link := models.DiscountTokenCourse{DiscountTokenID: tokenID, CourseID: courseID}
	return db.Create(&link).Error
}

// DetachCourse removes a course from a token's eligible set.
func DetachCourse(db *gorm.DB, tokenID, courseID uint) error {
	result := db.Model(&models.DiscountTokenCourse{}).
		Where("discount_token_id = ? AND course_id = ? AND is_deleted = ?", tokenID, courseID, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeactivateToken turns a token off; attached courses fall back to full price.
func DeactivateToken(db *gorm.DB, tokenID uint) error {
	var token models.DiscountToken
	if err := db.Where("id = ? AND is_deleted = ?", tokenID, false).First(&token).Error; err != nil {
		return ErrNotFound
	}
	token.IsActive = false
	return db.Save(&token).Error
}

// GetToken fetches a token by its code for client-side re-validation.
func GetToken(db *gorm.DB, code string) (*models.DiscountToken, []uint, error) {
	var token models.DiscountToken
	if err := db.Where("token = ? AND is_deleted = ?", code, false).First(&token).Error; err != nil {
		return nil, nil, ErrNotFound
	}
	var links []models.DiscountTokenCourse
	if err := db.Where("discount_token_id = ? AND is_deleted = ?", token.ID, false).Find(&links).Error; err != nil {
		return nil, nil, err
	}
	courseIDs := make([]uint, 0, len(links))
	for _, link := range links {
		courseIDs = append(courseIDs, link.CourseID)
	}
	return &token, courseIDs, nil
}
