package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	firebase "firebase.google.com/go"
	fbauth "firebase.google.com/go/auth"
	"google.golang.org/api/option"

	"github.com/golang-jwt/jwt/v5"
)

var (
	firebaseApp  *firebase.App
	firebaseAuth *fbauth.Client
	projectID    string
)

// InitFirebase initializes the Firebase Admin client from environment
// configuration. Called explicitly from main at application start.
func InitFirebase() {
	ctx := context.Background()

	// Read the whole JSON blob out of the ENV
	credsJSON := os.Getenv("FIREBASE_CREDENTIALS_JSON")
	if credsJSON == "" {
		log.Fatal("❌ FIREBASE_CREDENTIALS_JSON must be set")
	}

	projectID = os.Getenv("FIREBASE_PROJECT_ID")
	if projectID == "" {
		log.Fatal("❌ FIREBASE_PROJECT_ID must be set")
	}

	// INITIALIZE FIREBASE with the JSON directly (no file!)
	opt := option.WithCredentialsJSON([]byte(credsJSON))
	config := &firebase.Config{ProjectID: projectID}

	var err error
	firebaseApp, err = firebase.NewApp(ctx, config, opt)
	if err != nil {
		log.Fatalf("❌ Error initializing Firebase app: %v", err)
	}

	firebaseAuth, err = firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("❌ Error getting Firebase Auth client: %v", err)
	}
}

// issueJWT generates an app JWT for an authenticated identity.
func issueJWT(email, role, userID, name, picture string) string {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"role":    role,
		"name":    name,
		"picture": picture,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		log.Printf("❌ Failed to sign JWT: %v", err)
		return ""
	}

	return signedToken
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("❌ Failed to write JSON response: %v", err)
	}
}
