package domain

import "testing"

func TestInstanceRefRoundTrip(t *testing.T) {
	appTypes := []AppType{AppTypeRadarr, AppTypeSonarr, AppTypeMovieHunt, AppTypeTVHunt}
	names := []string{"main", "4k", "anime backlog", "My-Instance_2"}

	for _, at := range appTypes {
		for _, name := range names {
			got := DecodeInstanceRef(EncodeInstanceRef(at, name), AppTypeRadarr)
			if got.AppType != at || got.Name != name {
				t.Fatalf("round trip (%s, %q) = (%s, %q)", at, name, got.AppType, got.Name)
			}
		}
	}
}

func TestDecodeInstanceRef(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		defaultType AppType
		want        InstanceRef
	}{
		{
			name:        "bare pre-migration name",
			value:       "MyInstance",
			defaultType: AppTypeRadarr,
			want:        InstanceRef{AppType: AppTypeRadarr, Name: "MyInstance"},
		},
		{
			name:        "empty value",
			value:       "",
			defaultType: AppTypeSonarr,
			want:        InstanceRef{AppType: AppTypeSonarr, Name: ""},
		},
		{
			name:        "encoded form",
			value:       "movie_hunt:4k",
			defaultType: AppTypeRadarr,
			want:        InstanceRef{AppType: AppTypeMovieHunt, Name: "4k"},
		},
		{
			name:        "name containing the separator splits on first only",
			value:       "sonarr:tv:4k",
			defaultType: AppTypeRadarr,
			want:        InstanceRef{AppType: AppTypeSonarr, Name: "tv:4k"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeInstanceRef(tt.value, tt.defaultType)
			if got != tt.want {
				t.Fatalf("DecodeInstanceRef(%q, %s) = %+v, want %+v",
					tt.value, tt.defaultType, got, tt.want)
			}
		})
	}
}

func TestEncodeKeepsSeparatorInName(t *testing.T) {
	encoded := EncodeInstanceRef(AppTypeTVHunt, "a:b")
	if encoded != "tv_hunt:a:b" {
		t.Fatalf("encoded = %q", encoded)
	}
	got := DecodeInstanceRef(encoded, AppTypeRadarr)
	if got.AppType != AppTypeTVHunt || got.Name != "a:b" {
		t.Fatalf("decode(%q) = %+v", encoded, got)
	}
}
