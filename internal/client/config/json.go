package config

import (
	"os"
	"time"

	"github.com/goccy/go-json"

	"github.com/photoupload/photoctl/internal/flagx"
	"github.com/photoupload/photoctl/internal/timex"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "3s"
// or as integer nanoseconds. After parsing, set values are copied into the
// runtime Config.
type jsonConfig struct {
	APIBaseURL          *string         `json:"api_base_url"`
	UserID              *string         `json:"user_id"`
	Username            *string         `json:"username"`
	Password            *string         `json:"password"`
	Token               *string         `json:"token"`
	PageSize            *int            `json:"page_size"`
	UploadMaxBytes      *int64          `json:"upload_max_bytes"`
	ToastDuration       *timex.Duration `json:"toast_duration"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval"`
	RequestTimeout      *timex.Duration `json:"request_timeout"`
	LogFormat           *string         `json:"log_format"`
}

// parseJSON overlays cfg with values loaded from the JSON file named by the
// -c/-config flags. Absent file path means no JSON layer. Fields omitted
// from the file keep their previous value. Panics on read or unmarshal
// errors, matching the fail-fast startup behavior of the other layers.
func parseJSON(cfg *Config) {
	jsonConfigFile := flagx.JSONConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.APIBaseURL, jc.APIBaseURL)
	setString(&cfg.UserID, jc.UserID)
	setString(&cfg.Username, jc.Username)
	setString(&cfg.Password, jc.Password)
	setString(&cfg.Token, jc.Token)
	setString(&cfg.LogFormat, jc.LogFormat)
	if jc.PageSize != nil {
		cfg.PageSize = *jc.PageSize
	}
	if jc.UploadMaxBytes != nil {
		cfg.UploadMaxBytes = *jc.UploadMaxBytes
	}
	setDuration(&cfg.ToastDuration, jc.ToastDuration)
	setDuration(&cfg.OnlineCheckInterval, jc.OnlineCheckInterval)
	setDuration(&cfg.RequestTimeout, jc.RequestTimeout)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setDuration(dst *time.Duration, src *timex.Duration) {
	if src != nil {
		*dst = src.Duration
	}
}
