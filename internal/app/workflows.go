package app

import "strings"

// JoinPath joins root and rel with "/", dropping empty segments. A leading
// "/" on root is kept.
func JoinPath(root, rel string) string {
	segments := make([]string, 0, 8)
	for _, part := range [...]string{root, rel} {
		for _, seg := range strings.Split(part, "/") {
			if seg != "" {
				segments = append(segments, seg)
			}
		}
	}
	joined := strings.Join(segments, "/")
	if strings.HasPrefix(root, "/") {
		return "/" + joined
	}
	return joined
}
