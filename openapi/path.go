package openapi

import "strings"

// NormalizePath rewrites ":name" route segments into the "{name}" form
// OpenAPI requires. Literal braces already present are left untouched.
// The function is idempotent.
func NormalizePath(path string) string {
	if !strings.Contains(path, ":") {
		return path
	}
	segments := strings.Split(path, "/")
	for i, s := range segments {
		if len(s) > 1 && s[0] == ':' {
			segments[i] = "{" + s[1:] + "}"
		}
	}
	return strings.Join(segments, "/")
}

// MergePaths joins a mount prefix with a child path: both are split on "/",
// empty segments are discarded, and the result carries exactly one leading
// slash. Merging is associative and tolerates arbitrary leading, trailing,
// and duplicated slashes. Inputs with no usable segments resolve to "/".
func MergePaths(prefix, child string) string {
	var segments []string
	for _, part := range [2]string{prefix, child} {
		for _, s := range strings.Split(part, "/") {
			if s != "" {
				segments = append(segments, s)
			}
		}
	}
	if len(segments) == 0 {
		return "/"
	}
	return "/" + strings.Join(segments, "/")
}
