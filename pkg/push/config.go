package push

// Config carries FCM credentials plus the static delivery hints attached to
// every notification. The hints are deployment configuration, not domain
// logic: the mobile client expects this exact channel and tap action.
type Config struct {
	CredentialsFile  string `env:"FCM_CREDENTIALS_FILE"`                                          // CredentialsFile is the service account key path; empty falls back to application default credentials.
	ProjectID        string `env:"FCM_PROJECT_ID"`                                                // ProjectID overrides the project inferred from credentials.
	AndroidChannelID string `env:"PUSH_ANDROID_CHANNEL_ID" envDefault:"high_importance_channel"`  // AndroidChannelID is the client-side notification channel.
	Sound            string `env:"PUSH_SOUND" envDefault:"default"`                               // Sound is the notification sound on both platforms.
	Badge            int    `env:"PUSH_BADGE" envDefault:"1"`                                     // Badge is the APNS badge increment.
	ClickAction      string `env:"PUSH_CLICK_ACTION" envDefault:"FLUTTER_NOTIFICATION_CLICK"`     // ClickAction is merged into the data payload for client-side routing.
}
