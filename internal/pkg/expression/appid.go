package expression

import (
	"fmt"
	"strings"
)

const appIDMarker = "app.id == '"

type PlatformNotFoundError struct {
	Platform string
}

type InvalidAppIDError struct {
	AppID string
}

func (e PlatformNotFoundError) Error() string {
	return fmt.Sprintf("App ID for compatible platform %s was not found for this project", e.Platform)
}

func (e InvalidAppIDError) Error() string {
	return fmt.Sprintf(`app ID "%s" does not contain a platform`, e.AppID)
}

// Platform returns the platform segment of an app id.
// Full ids "1:123:ios:abc" and "company:app:ios:123" have the platform in the third segment,
// short ids "app:ios:1" in the second one.
func Platform(appID string) (string, bool) {
	parts := strings.Split(appID, ":")
	switch {
	case len(parts) >= 4:
		return parts[2], parts[2] != ""
	case len(parts) == 3:
		return parts[1], parts[1] != ""
	default:
		return "", false
	}
}

// ReplaceAppID replaces the first app id literal in the expression by the id with the same platform from appIDs.
// An expression without the app id clause is returned unchanged.
func ReplaceAppID(expression string, appIDs []string) (string, error) {
	start := strings.Index(expression, appIDMarker)
	if start < 0 {
		return expression, nil
	}
	start += len(appIDMarker)

	length := strings.IndexByte(expression[start:], '\'')
	if length < 0 {
		return expression, nil
	}
	end := start + length

	current := expression[start:end]
	platform, ok := Platform(current)
	if !ok {
		return "", InvalidAppIDError{AppID: current}
	}

	for _, candidate := range appIDs {
		if p, ok := Platform(candidate); ok && p == platform {
			return expression[:start] + candidate + expression[end:], nil
		}
	}

	return "", PlatformNotFoundError{Platform: platform}
}
