package armyforge

import (
	"regexp"
	"strings"

	"github.com/KirkDiggler/opr-tts-api/internal/errors"
)

var shareIDPattern = regexp.MustCompile(`id=([^&#]+)`)

const betaHost = "army-forge-beta.onepagerules.com"

// ParseShareLink pulls the list id out of an Army Forge share link such as
// https://army-forge.onepagerules.com/share?id=D4P2sovK&name=Alien_Hives and
// reports whether it came from the beta site. A bare id is accepted as is.
func ParseShareLink(link string) (armyID string, beta bool, err error) {
	link = strings.TrimSpace(link)
	if link == "" {
		return "", false, errors.InvalidArgument("share link is required")
	}

	beta = strings.Contains(link, betaHost)
	if m := shareIDPattern.FindStringSubmatch(link); m != nil {
		return m[1], beta, nil
	}
	if !strings.ContainsAny(link, "/?=&: ") {
		return link, false, nil
	}

	return "", false, errors.InvalidArgumentf("could not find an army id in %q", link)
}
