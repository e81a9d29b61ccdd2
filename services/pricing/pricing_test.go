package pricing

import (
	"testing"
	"time"

	"github.com/SacredMindInfotech/SacredMind-sub001/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.Category{},
		&models.Course{},
		&models.DiscountToken{},
		&models.DiscountTokenCourse{},
	))
	return db
}

func seedCourse(t *testing.T, db *gorm.DB, price int64, published bool) *models.Course {
	t.Helper()
	category := models.Category{Name: "Tech"}
	require.NoError(t, db.Create(&category).Error)
	course := models.Course{
		CategoryID:  category.ID,
		Title:       "Go Course",
		Price:       price,
		IsActive:    true,
		IsPublished: published,
	}
	require.NoError(t, db.Create(&course).Error)
	return &course
}

func TestEffectivePriceWithValidToken(t *testing.T) {
	db := testDB(t)
	now := time.Now()
	course := seedCourse(t, db, 1000, true)

	_, err := CreateToken(db, "SAVE20", 20, now.Add(24*time.Hour), []uint{course.ID})
	require.NoError(t, err)

	quote, err := EffectivePrice(db, course.ID, course.Price, now)
	require.NoError(t, err)
	assert.Equal(t, int64(800), quote.DiscountedPrice)
	assert.Equal(t, int64(200), quote.DiscountAmount)
}

func TestEffectivePriceExpiredToken(t *testing.T) {
	db := testDB(t)
	now := time.Now()
	course := seedCourse(t, db, 1000, true)

	_, err := CreateToken(db, "SAVE20", 20, now.Add(time.Hour), []uint{course.ID})
	require.NoError(t, err)

	// At or past expiry the token is silently absorbed into full price.
	quote, err := EffectivePrice(db, course.ID, course.Price, now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1000), quote.DiscountedPrice)
	assert.Zero(t, quote.DiscountAmount)
}

func TestEffectivePriceInactiveToken(t *testing.T) {
	db := testDB(t)
	now := time.Now()
	course := seedCourse(t, db, 1000, true)

	token, err := CreateToken(db, "SAVE20", 20, now.Add(24*time.Hour), []uint{course.ID})
	require.NoError(t, err)
	require.NoError(t, DeactivateToken(db, token.ID))

	quote, err := EffectivePrice(db, course.ID, course.Price, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), quote.DiscountedPrice)
	assert.Zero(t, quote.DiscountAmount)
}

func TestEffectivePriceIneligibleCourse(t *testing.T) {
	db := testDB(t)
	now := time.Now()
	eligible := seedCourse(t, db, 1000, true)
	other := models.Course{CategoryID: eligible.CategoryID, Title: "Other", Price: 500, IsActive: true, IsPublished: true}
	require.NoError(t, db.Create(&other).Error)

	_, err := CreateToken(db, "SAVE20", 20, now.Add(24*time.Hour), []uint{eligible.ID})
	require.NoError(t, err)

	quote, err := EffectivePrice(db, other.ID, other.Price, now)
	require.NoError(t, err)
	assert.Equal(t, int64(500), quote.DiscountedPrice)
	assert.Zero(t, quote.DiscountAmount)
}

func TestApplyRoundsHalfUp(t *testing.T) {
	// 1001 at 50% is 500.5, rounding half-up to 501.
	quote := Apply(1001, 50)
	assert.Equal(t, int64(501), quote.DiscountedPrice)
	assert.Equal(t, int64(500), quote.DiscountAmount)

	// 999 at 15% is 849.15, rounding down to 849.
	quote = Apply(999, 15)
	assert.Equal(t, int64(849), quote.DiscountedPrice)
	assert.Equal(t, int64(150), quote.DiscountAmount)

	// Zero percent leaves the base price whole.
	quote = Apply(1000, 0)
	assert.Equal(t, int64(1000), quote.DiscountedPrice)
	assert.Zero(t, quote.DiscountAmount)
}

func TestOnOfferRequiresDiscountAndPublished(t *testing.T) {
	db := testDB(t)
	now := time.Now()

	discounted := seedCourse(t, db, 1000, true)
	draft := models.Course{CategoryID: discounted.CategoryID, Title: "Draft", Price: 1000, IsActive: true, IsPublished: false}
	require.NoError(t, db.Create(&draft).Error)
	fullPrice := models.Course{CategoryID: discounted.CategoryID, Title: "Full", Price: 1000, IsActive: true, IsPublished: true}
	require.NoError(t, db.Create(&fullPrice).Error)

	_, err := CreateToken(db, "SAVE10", 10, now.Add(24*time.Hour), []uint{discounted.ID, draft.ID})
	require.NoError(t, err)

	offers, err := OnOffer(db, []models.Course{*discounted, draft, fullPrice}, now)
	require.NoError(t, err)

	assert.True(t, offers[discounted.ID].OnOffer)
	assert.False(t, offers[draft.ID].OnOffer, "unpublished course is never on offer")
	assert.False(t, offers[fullPrice.ID].OnOffer)
	assert.Equal(t, int64(900), offers[discounted.ID].DiscountedPrice)
}

func TestSingleActiveTokenPerCourse(t *testing.T) {
	db := testDB(t)
	now := time.Now()
	course := seedCourse(t, db, 1000, true)

	first, err := CreateToken(db, "FIRST", 10, now.Add(24*time.Hour), []uint{course.ID})
	require.NoError(t, err)

	_, err = CreateToken(db, "SECOND", 30, now.Add(24*time.Hour), []uint{course.ID})
	assert.ErrorIs(t, err, ErrTokenAttached)

	err = AttachCourse(db, first.ID, course.ID)
	assert.ErrorIs(t, err, ErrTokenAttached)

	// Once detached, a new token may take over.
	require.NoError(t, DetachCourse(db, first.ID, course.ID))
	_, err = CreateToken(db, "SECOND", 30, now.Add(24*time.Hour), []uint{course.ID})
	assert.NoError(t, err)
}

func TestCreateTokenValidation(t *testing.T) {
	db := testDB(t)
	now := time.Now()
	course := seedCourse(t, db, 1000, true)

	_, err := CreateToken(db, "BAD", 120, now.Add(time.Hour), []uint{course.ID})
	assert.ErrorIs(t, err, ErrBadPercentage)

	_, err = CreateToken(db, "GHOST", 10, now.Add(time.Hour), []uint{999})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetToken(t *testing.T) {
	db := testDB(t)
	now := time.Now()
	course := seedCourse(t, db, 1000, true)

	created, err := CreateToken(db, "SAVE25", 25, now.Add(time.Hour), []uint{course.ID})
	require.NoError(t, err)

	token, courseIDs, err := GetToken(db, "SAVE25")
	require.NoError(t, err)
	assert.Equal(t, created.ID, token.ID)
	assert.Equal(t, []uint{course.ID}, courseIDs)

	_, _, err = GetToken(db, "NOPE")
	assert.ErrorIs(t, err, ErrNotFound)
}
