package config

import (
	"github.com/spf13/viper"

	"mindcare/internal/model"
)

// CounselorConfig tunes the rule-based counselor bot
type CounselorConfig struct {
	// Helplines are attached to every crisis reply
	Helplines []string `mapstructure:"helplines"`

	// DefaultPersonality is used before a student has taken an assessment
	DefaultPersonality model.Personality `mapstructure:"default_personality"`

	// Seed fixes the response picker; 0 seeds from the clock
	Seed uint64 `mapstructure:"seed"`

	MaxMessageLength int `mapstructure:"max_message_length"`
	HistoryLimit     int `mapstructure:"history_limit"`
}

func setCounselorDefaults(v *viper.Viper) {
	v.SetDefault("counselor.helplines", []string{
		"Tele-MANAS (India): 14416 or 1-800-891-4416",
		"KIRAN Mental Health Helpline: 1800-599-0019",
		"Emergency services: 112",
	})
	v.SetDefault("counselor.default_personality", string(model.PersonalitySupportive))
	v.SetDefault("counselor.seed", 0)
	v.SetDefault("counselor.max_message_length", 2000)
	v.SetDefault("counselor.history_limit", 50)
}

// defaultDemoAccounts is the fallback credential table used when an account
// is not yet in the user store. Override with DEMO_ACCOUNTS in a config file.
func defaultDemoAccounts() []map[string]any {
	return []map[string]any{
		{"email": "student@demo.edu", "password": "student123", "name": "Demo Student", "role": string(model.RoleStudent), "college": "Demo College"},
		{"email": "counsellor@demo.edu", "password": "counsellor123", "name": "Demo Counsellor", "role": string(model.RoleCounsellor), "college": "Demo College"},
		{"email": "head@demo.edu", "password": "head12345", "name": "Demo College Head", "role": string(model.RoleCollegeHead), "college": "Demo College"},
		{"email": "admin@demo.edu", "password": "admin12345", "name": "Demo Admin", "role": string(model.RoleAdmin), "college": ""},
	}
}
