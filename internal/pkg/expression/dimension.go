// Package expression renders structured condition rules into the remote config expression language
// and rewrites application identifiers embedded in compiled expressions.
package expression

import "fmt"

// Dimension is a closed set of values a condition rule can test.
type Dimension int

const (
	AppID Dimension = iota
	AppVersion
	AppBuild
	UserProperty
	DeviceCountry
	DeviceLanguage
	DeviceOS
	DeviceDateTime
)

func Dimensions() []Dimension {
	return []Dimension{AppID, AppVersion, AppBuild, UserProperty, DeviceCountry, DeviceLanguage, DeviceOS, DeviceDateTime}
}

// String returns a human-readable label used in dialogs.
func (d Dimension) String() string {
	switch d {
	case AppID:
		return "App ID"
	case AppVersion:
		return "App version"
	case AppBuild:
		return "App build"
	case UserProperty:
		return "User property"
	case DeviceCountry:
		return "Device country"
	case DeviceLanguage:
		return "Device language"
	case DeviceOS:
		return "Device OS"
	case DeviceDateTime:
		return "Device date time"
	default:
		panic(fmt.Errorf("unexpected dimension %d", int(d)))
	}
}

// Operators returns operators which are legal for the dimension, dialogs offer only these.
func (d Dimension) Operators() []Operator {
	switch d {
	case AppID:
		return []Operator{Eq}
	case AppVersion, AppBuild, UserProperty:
		return []Operator{Contains, NotContains, Matches, ExactlyMatches, Less, LessEq, Eq, NotEq, Greater, GreaterEq}
	case DeviceCountry, DeviceLanguage:
		return []Operator{In}
	case DeviceOS:
		return []Operator{Eq, NotEq}
	case DeviceDateTime:
		return []Operator{LessEq, Greater}
	default:
		panic(fmt.Errorf("unexpected dimension %d", int(d)))
	}
}

// ScopedToApp reports whether the rule must be prefixed by an app id clause.
func (d Dimension) ScopedToApp() bool {
	switch d {
	case AppVersion, AppBuild, UserProperty:
		return true
	case AppID, DeviceCountry, DeviceLanguage, DeviceOS, DeviceDateTime:
		return false
	default:
		panic(fmt.Errorf("unexpected dimension %d", int(d)))
	}
}

// HasProperty reports whether the rule needs a property name, for example a user property.
func (d Dimension) HasProperty() bool {
	return d == UserProperty
}

func (d Dimension) field(property string) string {
	switch d {
	case AppID:
		return "app.id"
	case AppVersion:
		return "app.version"
	case AppBuild:
		return "app.build"
	case UserProperty:
		return "app.userProperty['" + property + "']"
	case DeviceCountry:
		return "device.country"
	case DeviceLanguage:
		return "device.language"
	case DeviceOS:
		return "device.os"
	case DeviceDateTime:
		return "device.dateTime"
	default:
		panic(fmt.Errorf("unexpected dimension %d", int(d)))
	}
}
