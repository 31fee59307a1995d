package components

import (
	"testing"

	"github.com/requestarr/requestarr/internal/domain"
)

var pickerInstances = []domain.Instance{
	{AppType: domain.AppTypeRadarr, Name: "main", Enabled: true},
	{AppType: domain.AppTypeMovieHunt, Name: "hunt", Enabled: true},
	{AppType: domain.AppTypeSonarr, Name: "tv-main", Enabled: true},
	{AppType: domain.AppTypeTVHunt, Name: "tv-hunt", Enabled: true},
}

func TestPickerListsAllInstancesServingTheKind(t *testing.T) {
	tests := []struct {
		name      string
		mediaType domain.MediaType
		want      []domain.InstanceRef
	}{
		{
			name:      "movies include movie_hunt",
			mediaType: domain.MediaTypeMovie,
			want: []domain.InstanceRef{
				{AppType: domain.AppTypeRadarr, Name: "main"},
				{AppType: domain.AppTypeMovieHunt, Name: "hunt"},
			},
		},
		{
			name:      "tv includes tv_hunt",
			mediaType: domain.MediaTypeTV,
			want: []domain.InstanceRef{
				{AppType: domain.AppTypeSonarr, Name: "tv-main"},
				{AppType: domain.AppTypeTVHunt, Name: "tv-hunt"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewInstancePicker()
			p.Open(tt.mediaType, tt.want[0])
			p.SetInstances(pickerInstances)

			var got []domain.InstanceRef
			for {
				ref, ok := p.Selected()
				if !ok {
					break
				}
				got = append(got, ref)
				before := ref
				p.MoveDown()
				if next, _ := p.Selected(); next == before {
					break
				}
			}
			if len(got) != len(tt.want) {
				t.Fatalf("listed %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("entry %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPickerHuntInstanceIsSelectable(t *testing.T) {
	p := NewInstancePicker()
	p.Open(domain.MediaTypeMovie, domain.InstanceRef{AppType: domain.AppTypeRadarr, Name: "main"})
	p.SetInstances(pickerInstances)

	p.MoveDown()
	ref, ok := p.Selected()
	if !ok {
		t.Fatal("no selection after MoveDown")
	}
	want := domain.InstanceRef{AppType: domain.AppTypeMovieHunt, Name: "hunt"}
	if ref != want {
		t.Fatalf("selected %v, want %v", ref, want)
	}
}

func TestPickerCursorStartsOnCurrentSelection(t *testing.T) {
	p := NewInstancePicker()
	current := domain.InstanceRef{AppType: domain.AppTypeMovieHunt, Name: "hunt"}
	p.Open(domain.MediaTypeMovie, current)
	p.SetInstances(pickerInstances)

	ref, ok := p.Selected()
	if !ok || ref != current {
		t.Fatalf("cursor on %v, want %v", ref, current)
	}
}
