package domain

import "strings"

// AppType identifies a backend library-management application kind.
type AppType string

const (
	AppTypeRadarr    AppType = "radarr"
	AppTypeSonarr    AppType = "sonarr"
	AppTypeMovieHunt AppType = "movie_hunt"
	AppTypeTVHunt    AppType = "tv_hunt"
)

// MediaType returns the media kind an app type manages. Radarr and Movie
// Hunt serve movies; Sonarr and TV Hunt serve TV.
func (t AppType) MediaType() MediaType {
	switch t {
	case AppTypeSonarr, AppTypeTVHunt:
		return MediaTypeTV
	default:
		return MediaTypeMovie
	}
}

// instanceRefSeparator joins app type and instance name in the encoded form.
// Instance names may themselves contain the separator; decoding splits on the
// first occurrence only.
const instanceRefSeparator = ":"

// InstanceRef identifies a backend target as (app type, instance name).
// Only the encoded string form is ever persisted.
type InstanceRef struct {
	AppType AppType
	Name    string
}

// IsZero reports whether the ref has no instance name.
func (r InstanceRef) IsZero() bool {
	return r.Name == ""
}

// Encode returns the persistable "<appType>:<name>" form.
func (r InstanceRef) Encode() string {
	return string(r.AppType) + instanceRefSeparator + r.Name
}

// EncodeInstanceRef builds the "<appType>:<name>" string form.
func EncodeInstanceRef(appType AppType, name string) string {
	return InstanceRef{AppType: appType, Name: name}.Encode()
}

// DecodeInstanceRef parses an encoded instance reference. It is total:
// an empty value yields (defaultAppType, ""), a value without a separator is
// treated as a bare pre-migration instance name under defaultAppType, and
// otherwise the value is split on the first separator only.
func DecodeInstanceRef(value string, defaultAppType AppType) InstanceRef {
	if value == "" {
		return InstanceRef{AppType: defaultAppType}
	}
	appType, name, found := strings.Cut(value, instanceRefSeparator)
	if !found {
		return InstanceRef{AppType: defaultAppType, Name: value}
	}
	return InstanceRef{AppType: AppType(appType), Name: name}
}
