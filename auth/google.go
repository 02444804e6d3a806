package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"gorm.io/gorm"

	"github.com/shivarajm8234/mahalaxmifoods-api/models"
)

// ---------------------------------------------
// GOOGLE USER LOGIN
// ---------------------------------------------
func GoogleUserLoginHandler(w http.ResponseWriter, r *http.Request, db *gorm.DB) {
	var req struct {
		IDToken string `json:"idToken"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IDToken == "" {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	ctx := context.Background()

	// Verify Firebase token
	token, err := firebaseAuth.VerifyIDTokenAndCheckRevoked(ctx, req.IDToken)
	if err != nil {
		http.Error(w, "Invalid Firebase ID token", http.StatusUnauthorized)
		return
	}

	if token.Audience != projectID {
		http.Error(w, "Invalid token audience", http.StatusUnauthorized)
		return
	}

	// Extract user info
	email, ok := token.Claims["email"].(string)
	if !ok || email == "" {
		http.Error(w, "Email not found in token", http.StatusUnauthorized)
		return
	}
	name, _ := token.Claims["name"].(string)
	picture, _ := token.Claims["picture"].(string)
	firebaseUserID := token.UID

	// Fetch or create user; every user owns exactly one cart row.
	var user models.User
	err = db.Preload("Cart.Items").Where("id = ?", firebaseUserID).First(&user).Error

	if err == gorm.ErrRecordNotFound {
		user = models.User{
			ID:       firebaseUserID,
			Email:    email,
			Name:     name,
			Picture:  picture,
			Provider: "google",
			Cart:     models.Cart{UserID: firebaseUserID},
		}

		if err := db.Create(&user).Error; err != nil {
			http.Error(w, "Failed to create user", http.StatusInternalServerError)
			return
		}

	} else if err == nil {
		// User already exists → refresh profile
		db.Model(&user).Updates(models.User{
			Name:    name,
			Picture: picture,
		})
	} else {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	models.LogActivity(db, user.ID, "login", "google sign-in")

	resp := map[string]interface{}{
		"message": "Login successful",
		"user":    user,
		"token":   issueJWT(email, "user", firebaseUserID, name, picture),
	}

	respondJSON(w, http.StatusOK, resp)
}
