package config

import (
	"time"
)

// Settings is the immutable configuration snapshot handed to services.
// Keys map to planpilot.yaml and to PLANPILOT_* environment variables
// (nested keys joined with "_", e.g. PLANPILOT_AUTO_CONTINUE_DEBOUNCE).
type Settings struct {
	AutoContinue AutoContinueSettings `mapstructure:"auto_continue"`
	DBPath       string               `mapstructure:"db_path"`
	Debug        bool                 `mapstructure:"debug"`
	DebugFile    string               `mapstructure:"debug_file"`
	Display      DisplaySettings      `mapstructure:"display"`
	Home         string               `mapstructure:"home"`
	Host         HostSettings         `mapstructure:"host"`
	MaxLogFiles  int                  `mapstructure:"max_log_files" validate:"gte=0"`
}

// HostSettings locates the assistant host's HTTP API
type HostSettings struct {
	Directory      string        `mapstructure:"directory"`
	ReconnectDelay time.Duration `mapstructure:"reconnect_delay" validate:"gt=0"`
	RequestTimeout time.Duration `mapstructure:"request_timeout" validate:"gte=0"`
	URL            string        `mapstructure:"url" validate:"required,url"`
}

// AutoContinueSettings tunes the auto-continue loop
type AutoContinueSettings struct {
	Debounce       time.Duration    `mapstructure:"debounce" validate:"gte=0"`
	DedupeWindow   time.Duration    `mapstructure:"dedupe_window" validate:"gte=0"`
	Enabled        bool             `mapstructure:"enabled"`
	HistoryLimit   int              `mapstructure:"history_limit" validate:"min=1,max=200"`
	Retry          RetrySettings    `mapstructure:"retry"`
	SessionIdleTTL time.Duration    `mapstructure:"session_idle_ttl" validate:"gt=0"`
	Template       string           `mapstructure:"template"`
	TriggerTTL     time.Duration    `mapstructure:"trigger_ttl" validate:"gt=0"`
	Triggers       TriggersSettings `mapstructure:"triggers"`
}

// RetrySettings bounds how often a failed continuation is resent
type RetrySettings struct {
	Delays      []time.Duration `mapstructure:"delays" validate:"min=1,dive,gt=0"`
	Enabled     bool            `mapstructure:"enabled"`
	MaxAttempts int             `mapstructure:"max_attempts" validate:"min=1,max=20"`
}

// KeywordSettings is the keyword filter of a trigger rule
type KeywordSettings struct {
	All           []string `mapstructure:"all"`
	Any           []string `mapstructure:"any"`
	CaseSensitive bool     `mapstructure:"case_sensitive"`
	None          []string `mapstructure:"none"`
}

// RuleSettings is the common shape of every configurable trigger
type RuleSettings struct {
	Enabled  bool            `mapstructure:"enabled"`
	Force    bool            `mapstructure:"force"`
	Keywords KeywordSettings `mapstructure:"keywords"`
}

// ErrorRuleSettings filters session errors
type ErrorRuleSettings struct {
	RuleSettings  `mapstructure:",squash"`
	ErrorNames    []string `mapstructure:"error_names"`
	RetryableOnly bool     `mapstructure:"retryable_only"`
	StatusCodes   []int    `mapstructure:"status_codes" validate:"dive,min=100,max=599"`
}

// RetryRuleSettings filters host retry notifications
type RetryRuleSettings struct {
	RuleSettings `mapstructure:",squash"`
	MinAttempt   int `mapstructure:"min_attempt" validate:"gte=0"`
}

// TriggersSettings holds the rule-gated triggers. Idle notifications are
// always a trigger and have no setting.
type TriggersSettings struct {
	PermissionAsked    RuleSettings      `mapstructure:"permission_asked"`
	PermissionRejected RuleSettings      `mapstructure:"permission_rejected"`
	QuestionAsked      RuleSettings      `mapstructure:"question_asked"`
	QuestionRejected   RuleSettings      `mapstructure:"question_rejected"`
	SessionError       ErrorRuleSettings `mapstructure:"session_error"`
	SessionRetry       RetryRuleSettings `mapstructure:"session_retry"`
}

// DisplaySettings controls CLI status rendering
type DisplaySettings struct {
	DoneColor string `mapstructure:"done_color"`
	DoneIcon  string `mapstructure:"done_icon"`
	TodoColor string `mapstructure:"todo_color"`
	TodoIcon  string `mapstructure:"todo_icon"`
	WaitIcon  string `mapstructure:"wait_icon"`
}

// Default values
const (
	DefaultDebounce       = time.Second
	DefaultDedupeWindow   = 1500 * time.Millisecond
	DefaultHistoryLimit   = 20
	DefaultHostURL        = "http://127.0.0.1:4096"
	DefaultMaxAttempts    = 3
	DefaultMaxLogFiles    = 1000
	DefaultReconnectDelay = 2 * time.Second
	DefaultRequestTimeout = 30 * time.Second
	DefaultSessionIdleTTL = time.Hour
	DefaultTriggerTTL     = 10 * time.Minute
)

// DefaultRetryDelays is the backoff schedule for resends. Attempts past the
// end reuse the last delay.
var DefaultRetryDelays = []time.Duration{2 * time.Second, 5 * time.Second, 10 * time.Second}

// DefaultSettings returns the settings used when nothing is configured
func DefaultSettings() Settings {
	return Settings{
		AutoContinue: AutoContinueSettings{
			Debounce:     DefaultDebounce,
			DedupeWindow: DefaultDedupeWindow,
			Enabled:      true,
			HistoryLimit: DefaultHistoryLimit,
			Retry: RetrySettings{
				Delays:      append([]time.Duration(nil), DefaultRetryDelays...),
				Enabled:     true,
				MaxAttempts: DefaultMaxAttempts,
			},
			SessionIdleTTL: DefaultSessionIdleTTL,
			TriggerTTL:     DefaultTriggerTTL,
			Triggers: TriggersSettings{
				SessionError: ErrorRuleSettings{
					RuleSettings:  RuleSettings{Enabled: true},
					RetryableOnly: true,
				},
				SessionRetry: RetryRuleSettings{MinAttempt: 1},
			},
		},
		Display: DisplaySettings{
			DoneColor: "46",
			DoneIcon:  "✓",
			TodoColor: "214",
			TodoIcon:  "○",
			WaitIcon:  "⏸",
		},
		Host: HostSettings{
			ReconnectDelay: DefaultReconnectDelay,
			RequestTimeout: DefaultRequestTimeout,
			URL:            DefaultHostURL,
		},
		MaxLogFiles: DefaultMaxLogFiles,
	}
}
