package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// UserAgent identifies the HTTP client.
var UserAgent = "Analog-Clock/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "Analog Clock"
	AppID             = "com.github.tartampluch.analog-clock"
	KeyringService    = "com.github.tartampluch.analog-clock"
	KeyringAPIUser    = "gemini_api_key"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	MsgVersionOutput = "%s version %s (commit %s, built %s, %s/%s)\n"
)

// -----------------------------------------------------------------------------
// Clock Behaviour
// -----------------------------------------------------------------------------

const (
	// TickPeriod is the cadence of the live clock.
	TickPeriod = 1 * time.Second

	MaxHours   = 23
	MaxMinutes = 59

	// DescribeTimeout bounds a single description request.
	DescribeTimeout = 20 * time.Second

	// DescribeModel is the Gemini model used for time descriptions.
	DescribeModel = "gemini-2.5-flash"

	EnvAPIKey       = "GEMINI_API_KEY"
	EnvAPIKeyLegacy = "API_KEY"
)

// -----------------------------------------------------------------------------
// Time Descriptions
// -----------------------------------------------------------------------------

// Prompts take the hour and the zero-padded minute.
const (
	DescribePromptEN = "The time is now %d:%02d. Please describe the feeling or suitable activities for this time of day " +
		"in a short, beautiful, and lively sentence (e.g., morning glimmer, afternoon laziness, late night silence). " +
		"Keep it under 50 words."
	DescribePromptZH = "现在的时间是 %d:%02d。请用一句简短、优美、富有生活气息的中文，描述这个时间点通常给人的感觉或者适合做的事情" +
		"（例如：清晨的微光、午后的慵懒、深夜的静谧等）。字数控制在50字以内。"
)

// Static sentences shown when no description could be generated.
const (
	FallbackNoKeyEN  = "Please configure an API key to use smart descriptions."
	FallbackEmptyEN  = "The AI seems to be daydreaming."
	FallbackFailedEN = "Failed to get a time description."

	FallbackNoKeyZH  = "请先配置 API Key 以使用智能描述功能。"
	FallbackEmptyZH  = "AI 似乎在发呆，没有返回内容。"
	FallbackFailedZH = "获取时间描述失败，请检查网络或 API Key。"
)

// -----------------------------------------------------------------------------
// UI Constants & Preferences
// -----------------------------------------------------------------------------

const (
	MainWindowWidth     = 880
	MainWindowHeight    = 620
	SettingsWindowWidth = 480
	ClockFaceMinSize    = 320

	// Preference Keys (collaborator settings only; clock state is never stored)
	PrefServerPort = "server_port"
	PrefLastRun    = "last_run_version"

	DigitalSeparator = ":"

	// Text sizes. Numeral sizes are relative to the 200 unit reference dial.
	TitleTextSize        = 26
	DigitalTextSize      = 48
	DigitalSubTextSize   = 16
	NumeralMajorTextSize = 16
	NumeralMinorTextSize = 14
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyTitle            = "title"
	TKeySubtitle         = "subtitle"
	TKeyControlPanel     = "control_panel"
	TKeyLive             = "live"
	TKeyManual           = "manual"
	TKeyTimeAdjustment   = "time_adjustment"
	TKeyHours            = "hours"
	TKeyMinutes          = "minutes"
	TKeyDisplaySettings  = "display_settings"
	TKeyShowNumbers      = "show_numbers"
	TKeyIs24Hour         = "is_24_hour"
	TKeyFooterCalcHour   = "footer_calc_hour"
	TKeyFooterCalcMinute = "footer_calc_minute"
	TKeyLanguage         = "language"
	TKeyToggleLang       = "toggle_lang"
	TKeyBtnDescribe      = "btn_describe"
	TKeyDescribePending  = "describe_pending"
	TKeyMenuFile         = "menu_file"
	TKeyMenuSettings     = "menu_settings"
	TKeyWinSettings      = "win_settings_title"
	TKeyLblAPIKey        = "lbl_api_key"
	TKeyHelpAPIKey       = "help_api_key"
	TKeyLblPort          = "lbl_server_port"
	TKeyHelpPort         = "help_port"
	TKeyBtnSave          = "btn_save"
	TKeyBtnCancel        = "btn_cancel"
	TKeyLblFooter        = "lbl_footer"

	// Validation Errors (UI)
	TKeyErrPortReq   = "err_port_required"
	TKeyErrPortNum   = "err_port_number"
	TKeyErrPortRange = "err_port_range"
)

// -----------------------------------------------------------------------------
// Default Values
// -----------------------------------------------------------------------------

const (
	DefaultPort     = "18081"
	DefaultLanguage = "en"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar
// -----------------------------------------------------------------------------

const (
	ICalVersion   = "2.0"
	ICalProdid    = "-//Analog Clock//Export//EN"
	ICalCalName   = "Analog Clock"
	ICalMethod    = "PUBLISH"
	ICalScale     = "GREGORIAN"
	ICalComponent = "VALARM"
	ICalAction    = "DISPLAY"
	ICalDomain    = "analogclock"
	ICalTrigger   = "PT0M"

	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDTStart     = "DTSTART"
	PropDTStamp     = "DTSTAMP"
	PropDuration    = "DURATION"
	PropAction      = "ACTION"
	PropDescription = "DESCRIPTION"
	PropTrigger     = "TRIGGER"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"

	FormatUID        = "%02d%02d-%s@%s"
	FormatEvtSummary = "%s:%s %s"
	DateFormatUID    = "20060102"
	ExportEventSpan  = 1 * time.Minute
)

// -----------------------------------------------------------------------------
// Limits
// -----------------------------------------------------------------------------

const (
	MinPort = 1
	MaxPort = 65535
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	ShutdownTimeout    = 5 * time.Second
	ServerReadTimeout  = 10 * time.Second
	ServerWriteTimeout = 30 * time.Second
	ServerIdleTimeout  = 60 * time.Second
	RetryAfterSeconds  = "2"
	AllowedMethods     = "GET, HEAD"
	RouteState         = "/state.json"
	RouteICal          = "/clock.ics"
	AddrSeparator      = ":"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderAllow           = "Allow"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"
	HeaderUserAgent       = "User-Agent"

	MimeJSON            = "application/json; charset=utf-8"
	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrServerStartup    = "server startup failed"
	ErrServerShutdown   = "server shutdown failed"
	ErrPortRequired     = "server port is required"
	ErrICalEncode       = "failed to encode iCalendar data"
	ErrJSONEncode       = "failed to encode clock state"
	ErrExport           = "failed to export clock snapshot"
	ErrLogFile          = "failed to open log file"
	ErrCacheDir         = "could not determine user cache dir"
	ErrCreateDir        = "could not create app cache dir"
	ErrAppFailed        = "application failed unexpectedly"
	ErrWriteResp        = "failed to write response body"
	ErrLocalesAccess    = "failed to access embedded locales"
	ErrLocaleLoad       = "failed to load locale file"
	ErrNoCredential     = "no API key configured"
	ErrGenClient        = "failed to create generation client"
	ErrGenRequest       = "generation request failed"
	ErrGenEmpty         = "generation returned no text"
	ErrKeyringSave      = "failed to save API key to keyring"
	ErrKeyringRead      = "API key not available in keyring"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInitializing = "Clock initializing, please try again shortly."
	HTTPMsgMethodNotAll = "Method Not Allowed"
)

// -----------------------------------------------------------------------------
// Fallbacks & Messages
// -----------------------------------------------------------------------------

const (
	TitleStartupError = "Startup Error"

	MsgPortBusy        = "Port %s is busy or unavailable."
	MsgAppStop         = "Application stopped gracefully"
	MsgCtxCancel       = "Context cancelled, shutting down UI"
	MsgAppStarting     = "Starting application"
	MsgServerListen    = "HTTP server listening"
	MsgServerStop      = "Shutting down HTTP server..."
	MsgCacheUpdated    = "Snapshot cache updated"
	MsgLocaleSkip      = "Skipping non-locale file"
	MsgLocaleBadName   = "Skipping malformed locale filename"
	MsgLocaleLoaded    = "Locale loaded successfully"
	MsgTransMissing    = "Missing translation key"
	MsgLogWarning      = "Warning: %s at %s: %v\n"
	MsgTickerStarted   = "Live ticker started"
	MsgTickerStopped   = "Live ticker stopped"
	MsgModeChanged     = "Clock mode changed"
	MsgTimeEdited      = "Time edited manually"
	MsgPrefChanged     = "Display preference changed"
	MsgTickDropped     = "Dropping stale tick"
	MsgDescribeReq     = "Requesting time description"
	MsgDescribeOK      = "Time description generated"
	MsgDescribeFail    = "Time description failed, using fallback"
	MsgSettingsOpen    = "Opening settings window"
	MsgSettingsFocus   = "Settings window already open, requesting focus"
	MsgSettingsSave    = "Saving preferences"
	MsgControllerClose = "Clock controller closed"
	MsgServerRestart   = "Feed port changed, restarting HTTP server"
	MsgFeedWait        = "Feed server stopped, waiting for a new port"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyPort      = "port"
	LogKeyMode      = "mode"
	LogKeyField     = "field"
	LogKeyValue     = "value"
	LogKeyClamped   = "clamped"
	LogKeyPref      = "preference"
	LogKeyTime      = "time"
	LogKeyEpoch     = "epoch"
	LogKeyPeriod    = "period"
	LogKeyRoute     = "route"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
	LogKeyModel     = "model"
	LogKeyDuration  = "duration_ms"
	LogKeyOld       = "old"
	LogKeyNew       = "new"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyCommit  = "commit"
	LogKeyDate    = "build_date"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI         = "ui"
	CompUISet      = "ui_settings"
	CompController = "controller"
	CompServer     = "server"
	CompDescribe   = "describe"
	CompMain       = "main"
	CompI18n       = "i18n"
)

// -----------------------------------------------------------------------------
// UI Layout Constants
// -----------------------------------------------------------------------------

const (
	LayoutColumnsDouble = 2
)
