package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// validate is a single instance of Validate, it caches struct info
var validate = validator.New()

// Load builds the settings snapshot: defaults, then planpilot.yaml, then
// .env and PLANPILOT_* variables. configFile overrides the search paths
// and must exist when given.
func Load(configFile string) (*Settings, error) {
	// A missing .env is fine
	_ = godotenv.Load()

	v := newViper()

	if configFile != "" {
		v.SetConfigFile(ExpandPath(configFile))
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		for _, dir := range configSearchPaths() {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	settings.resolvePaths()

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

// Validate checks field constraints
func (s *Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, len(verrs))
			for i, fe := range verrs {
				msgs[i] = fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag())
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func (s *Settings) resolvePaths() {
	if s.Home == "" {
		s.Home = GetHome()
	}
	s.Home = ExpandPath(s.Home)
	if s.DBPath == "" {
		s.DBPath = filepath.Join(s.Home, DBFileName)
	}
	s.DBPath = ExpandPath(s.DBPath)
	if s.DebugFile != "" {
		s.DebugFile = ExpandPath(s.DebugFile)
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, DefaultSettings())
	return v
}

// setDefaults registers every key so environment overrides resolve for
// nested settings too
func setDefaults(v *viper.Viper, d Settings) {
	v.SetDefault("home", d.Home)
	v.SetDefault("db_path", d.DBPath)
	v.SetDefault("debug", d.Debug)
	v.SetDefault("debug_file", d.DebugFile)
	v.SetDefault("max_log_files", d.MaxLogFiles)

	v.SetDefault("host.url", d.Host.URL)
	v.SetDefault("host.directory", d.Host.Directory)
	v.SetDefault("host.reconnect_delay", d.Host.ReconnectDelay)
	v.SetDefault("host.request_timeout", d.Host.RequestTimeout)

	ac := d.AutoContinue
	v.SetDefault("auto_continue.enabled", ac.Enabled)
	v.SetDefault("auto_continue.debounce", ac.Debounce)
	v.SetDefault("auto_continue.dedupe_window", ac.DedupeWindow)
	v.SetDefault("auto_continue.trigger_ttl", ac.TriggerTTL)
	v.SetDefault("auto_continue.session_idle_ttl", ac.SessionIdleTTL)
	v.SetDefault("auto_continue.history_limit", ac.HistoryLimit)
	v.SetDefault("auto_continue.template", ac.Template)
	v.SetDefault("auto_continue.retry.enabled", ac.Retry.Enabled)
	v.SetDefault("auto_continue.retry.max_attempts", ac.Retry.MaxAttempts)
	v.SetDefault("auto_continue.retry.delays", ac.Retry.Delays)

	setRuleDefaults(v, "auto_continue.triggers.session_error", ac.Triggers.SessionError.RuleSettings)
	v.SetDefault("auto_continue.triggers.session_error.error_names", ac.Triggers.SessionError.ErrorNames)
	v.SetDefault("auto_continue.triggers.session_error.status_codes", ac.Triggers.SessionError.StatusCodes)
	v.SetDefault("auto_continue.triggers.session_error.retryable_only", ac.Triggers.SessionError.RetryableOnly)
	setRuleDefaults(v, "auto_continue.triggers.session_retry", ac.Triggers.SessionRetry.RuleSettings)
	v.SetDefault("auto_continue.triggers.session_retry.min_attempt", ac.Triggers.SessionRetry.MinAttempt)
	setRuleDefaults(v, "auto_continue.triggers.permission_asked", ac.Triggers.PermissionAsked)
	setRuleDefaults(v, "auto_continue.triggers.permission_rejected", ac.Triggers.PermissionRejected)
	setRuleDefaults(v, "auto_continue.triggers.question_asked", ac.Triggers.QuestionAsked)
	setRuleDefaults(v, "auto_continue.triggers.question_rejected", ac.Triggers.QuestionRejected)

	v.SetDefault("display.todo_icon", d.Display.TodoIcon)
	v.SetDefault("display.done_icon", d.Display.DoneIcon)
	v.SetDefault("display.wait_icon", d.Display.WaitIcon)
	v.SetDefault("display.todo_color", d.Display.TodoColor)
	v.SetDefault("display.done_color", d.Display.DoneColor)
}

func setRuleDefaults(v *viper.Viper, prefix string, r RuleSettings) {
	v.SetDefault(prefix+".enabled", r.Enabled)
	v.SetDefault(prefix+".force", r.Force)
	v.SetDefault(prefix+".keywords.any", r.Keywords.Any)
	v.SetDefault(prefix+".keywords.all", r.Keywords.All)
	v.SetDefault(prefix+".keywords.none", r.Keywords.None)
	v.SetDefault(prefix+".keywords.case_sensitive", r.Keywords.CaseSensitive)
}
