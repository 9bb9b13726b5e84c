package validator

import (
	"net"
	"strconv"

	"github.com/go-playground/validator/v10"
	optsGenValidator "github.com/kazhuravlev/options-gen/pkg/validator"
)

var Validator = validator.New()

func init() {
	if err := Validator.RegisterValidation("listen_addr", isListenAddr); err != nil {
		panic(err)
	}
	optsGenValidator.Set(Validator)
}

// isListenAddr accepts "host:port" pairs suitable for net.Listen.
// Unlike hostname_port it allows an empty host and port 0 (ephemeral).
func isListenAddr(fl validator.FieldLevel) bool {
	host, port, err := net.SplitHostPort(fl.Field().String())
	if err != nil {
		return false
	}

	if _, err := strconv.ParseUint(port, 10, 16); err != nil {
		return false
	}

	if host == "" {
		return true
	}
	return Validator.Var(host, "ip|hostname_rfc1123") == nil
}
