package authController

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"ilmhub/config"
	"ilmhub/database"
	"ilmhub/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAuthTest(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.OTP{}))

	database.Database = database.DbInstance{Db: db}
	config.AppConfig = &config.Config{
		// No sendgrid key, so delivery is skipped and only persistence runs.
		OTPRequestLimit:  3,
		OTPWindowMinutes: 15,
	}

	return db
}

func TestSendOTP_PersistsCodeForVerification(t *testing.T) {
	db := setupAuthTest(t)

	user := models.User{Name: "Amina", Email: "amina@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	app := fiber.New()
	app.Post("/auth/send/otp", SendOTP)

	req := httptest.NewRequest("POST", "/auth/send/otp", strings.NewReader(`{"email":"amina@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// The code the user receives must already be stored and verifiable.
	var otp models.OTP
	require.NoError(t, db.Where("email = ? AND user_id = ?", "amina@example.com", user.ID).First(&otp).Error)
	assert.Len(t, otp.Code, 6)
	assert.False(t, otp.IsUsed)
}
