package helpers

import "net/url"

// AvatarURL builds the generated placeholder avatar assigned at registration
// when the user supplies none.
func AvatarURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=4ade80&color=fff"
}
