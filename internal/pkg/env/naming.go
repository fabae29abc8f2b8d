package env

import (
	"github.com/iancoleman/strcase"
)

const Prefix = "RCM_"

type NamingConvention struct{}

func NewNamingConvention() *NamingConvention {
	return &NamingConvention{}
}

// FlagToEnv converts flag name to ENV variable name,
// for example "access-token" -> "RCM_ACCESS_TOKEN".
func (*NamingConvention) FlagToEnv(flagName string) string {
	if flagName == "" {
		panic("flag name cannot be empty")
	}
	return Prefix + strcase.ToScreamingSnake(flagName)
}

func Files() []string {
	return []string{".env.local", ".env"}
}
