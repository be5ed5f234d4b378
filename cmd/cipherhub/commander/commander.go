package commander

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/sergeii/cipherhub/cmd/cipherhub/build"
	"github.com/sergeii/cipherhub/cmd/cipherhub/transcribe"
)

type Globals struct {
	LogLevel  string `default:"info"    enum:"debug,info,warn,error" help:"Sets the minimum severity level for log messages"` // nolint:lll
	LogOutput string `default:"console" enum:"console,stdout,json"   help:"Specifies the format for log output"`

	Storage  string `default:"redis"                  enum:"redis,memory" help:"Selects where interactive sessions are kept"` // nolint:lll
	RedisURL string `default:"redis://localhost:6379" help:"Defines the Redis URL connection"`

	ExporterHTTPListenAddress   string        `default:":9000" help:"Sets the address where the Prometheus exporter server listens for requests"`            // nolint:lll
	ExporterHTTPReadTimeout     time.Duration `default:"5s"    help:"Sets the maximum duration to read the request body before timing out"`                  // nolint:lll
	ExporterHTTPWriteTimeout    time.Duration `default:"5s"    help:"Sets the maximum duration to write a response before timing out"`                       // nolint:lll
	ExporterHTTPShutdownTimeout time.Duration `default:"10s"   help:"The amount of time the server will wait gracefully closing connections before exiting"` // nolint:lll

	SessionTTL     time.Duration `default:"24h" help:"Sets how long an interactive session is kept after the last key press"` // nolint:lll
	SessionLockTTL time.Duration `default:"5s"  help:"Limits how long a key press may hold a session locked"`
	SessionTape    int           `default:"500" help:"Sets how many recent lamps a session remembers"`
}

type VersionCmd struct{}

func (v *VersionCmd) Run() error {
	version := fmt.Sprintf("Version: %s (%s) built at %s", build.Version, build.Commit, build.Time)
	fmt.Println(version) // nolint: forbidigo
	os.Exit(0)
	return nil
}

type RunCmd struct {
	kong.Plugins
}

type CLI struct {
	Globals

	Version VersionCmd           `cmd:"" help:"Display the app version and exit"`
	Run     RunCmd               `cmd:""`
	Enigma  transcribe.EnigmaCmd `cmd:"" help:"Transcribe a message on a rotor machine"`
	Purple  transcribe.PurpleCmd `cmd:"" help:"Transcribe a message on a stepping switch machine"`
}
