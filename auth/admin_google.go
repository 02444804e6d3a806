package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"

	"gorm.io/gorm"

	"github.com/shivarajm8234/mahalaxmifoods-api/models"
)

// GoogleAdminLoginHandler handles admin login via Google OAuth2.
// New admins are registered pending approval by the super admin.
func GoogleAdminLoginHandler(w http.ResponseWriter, r *http.Request, db *gorm.DB) {
	var req struct {
		IDToken string `json:"idToken"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IDToken == "" {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	ctx := context.Background()

	// Verify the token AND check for revocation
	token, err := firebaseAuth.VerifyIDTokenAndCheckRevoked(ctx, req.IDToken)
	if err != nil {
		log.Printf("❌ ID token verification failed: %v", err)
		http.Error(w, "Invalid or revoked ID token", http.StatusUnauthorized)
		return
	}

	if token.Audience != projectID {
		log.Printf("❌ Token audience mismatch: got %q", token.Audience)
		http.Error(w, "Invalid token audience", http.StatusUnauthorized)
		return
	}

	// Extract standard claims
	email, ok := token.Claims["email"].(string)
	if !ok || email == "" {
		http.Error(w, "Email not found in token", http.StatusUnauthorized)
		return
	}
	name, _ := token.Claims["name"].(string)
	picture, _ := token.Claims["picture"].(string)
	firebaseUserID := token.UID

	superAdminEmail := os.Getenv("SUPER_ADMIN_EMAIL")

	// Super admin shortcut
	if email == superAdminEmail {
		issueTokenAndRespond(w, email, "superadmin", firebaseUserID, name, picture)
		return
	}

	// Regular admin flow
	var admin models.Admin
	err = db.Where("email = ?", email).First(&admin).Error
	if err == gorm.ErrRecordNotFound {
		// Create pending admin
		admin = models.Admin{
			Email:    email,
			Name:     name,
			Picture:  picture,
			Approved: false,
		}
		if err := db.Create(&admin).Error; err != nil {
			http.Error(w, "Failed to register admin", http.StatusInternalServerError)
			return
		}
		log.Printf("📝 New admin registered: %s (pending approval)", email)
		http.Error(w, "Pending approval by super admin", http.StatusForbidden)
		return
	} else if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	// Update profile if changed
	if err := db.Model(&admin).Updates(models.Admin{Name: name, Picture: picture}).Error; err != nil {
		http.Error(w, "Failed to update admin info", http.StatusInternalServerError)
		return
	}

	// Reload to get the latest Approved flag
	if err := db.First(&admin, admin.ID).Error; err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	if !admin.Approved {
		http.Error(w, "Pending approval by super admin", http.StatusForbidden)
		return
	}

	// Approved admin
	issueTokenAndRespond(w, email, "admin", firebaseUserID, name, picture)
}

// issueTokenAndRespond issues JWT and sends JSON response.
func issueTokenAndRespond(w http.ResponseWriter, email, role, userID, name, picture string) {
	jwtStr := issueJWT(email, role, userID, name, picture)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"token":   jwtStr,
		"role":    role,
		"email":   email,
		"name":    name,
		"picture": picture,
	})
}
