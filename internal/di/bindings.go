package di

import (
	"mindcare/internal/providers"
	"mindcare/internal/services"
	"mindcare/internal/storage"
)

func chatTranscript(db *storage.Database) services.ChatTranscript {
	return db.Chat
}

func tokenVerifier(auth services.AuthServiceInterface) providers.TokenVerifier {
	return auth
}
