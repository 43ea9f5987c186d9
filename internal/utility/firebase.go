package utility

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

var (
	firebaseApp  *firebase.App
	firebaseAuth *auth.Client
)

// findProjectRoot mencari akar proyek (direktori yang memuat config/env)
func findProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return currentDir, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", fmt.Errorf("project root with config/env not found")
		}
		currentDir = parentDir
	}
}

// InitFirebase menginisialisasi Firebase Admin SDK.
// Path credentials relatif diselesaikan dari akar proyek.
func InitFirebase(projectID, credentialsPath string) error {
	if !filepath.IsAbs(credentialsPath) {
		rootDir, err := findProjectRoot()
		if err != nil {
			return fmt.Errorf("cannot resolve firebase credentials path: %w", err)
		}
		credentialsPath = filepath.Join(rootDir, credentialsPath)
	}

	if _, err := os.Stat(credentialsPath); os.IsNotExist(err) {
		return fmt.Errorf("firebase credentials file not found: %s", credentialsPath)
	}

	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(context.Background(), &firebase.Config{
		ProjectID: projectID,
	}, opt)
	if err != nil {
		return fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	firebaseApp = app

	authClient, err := app.Auth(context.Background())
	if err != nil {
		return fmt.Errorf("failed to get Firebase Auth client: %w", err)
	}

	firebaseAuth = authClient
	return nil
}

// GetFirebaseAuth mengembalikan klien Firebase Auth (nil bila belum ter-init)
func GetFirebaseAuth() *auth.Client {
	return firebaseAuth
}

// VerifyIDToken memverifikasi Firebase ID token dan mengembalikan isinya
func VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error) {
	if firebaseAuth == nil {
		return nil, fmt.Errorf("firebase auth not initialized")
	}

	token, err := firebaseAuth.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("failed to verify ID token: %w", err)
	}

	return token, nil
}

// GetUserByUID mengambil data user Firebase berdasarkan UID
func GetUserByUID(ctx context.Context, uid string) (*auth.UserRecord, error) {
	if firebaseAuth == nil {
		return nil, fmt.Errorf("firebase auth not initialized")
	}

	user, err := firebaseAuth.GetUser(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}
