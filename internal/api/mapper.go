package api

import "github.com/requestarr/requestarr/internal/domain"

// mapResult converts a wire result to the domain view entity. fallbackType is
// used when the backend omits media_type on kind-scoped endpoints.
func mapResult(dto resultDTO, fallbackType domain.MediaType) domain.MediaCard {
	mediaType := domain.MediaType(dto.MediaType)
	if mediaType != domain.MediaTypeMovie && mediaType != domain.MediaTypeTV {
		mediaType = fallbackType
	}
	return domain.MediaCard{
		TmdbID:      dto.TmdbID,
		MediaType:   mediaType,
		Title:       dto.Title,
		Year:        dto.Year,
		PosterPath:  dto.PosterPath,
		Overview:    dto.Overview,
		VoteAverage: dto.VoteAverage,
		InLibrary:   dto.InLibrary,
		Partial:     dto.Partial,
		Importable:  dto.Importable,
		Pending:     dto.Pending,
		SuggestedInstance: domain.DecodeInstanceRef(
			dto.SuggestedInstance, mediaType.DefaultAppType()),
	}
}

func mapResults(dtos []resultDTO, fallbackType domain.MediaType) []domain.MediaCard {
	cards := make([]domain.MediaCard, len(dtos))
	for i, dto := range dtos {
		cards[i] = mapResult(dto, fallbackType)
	}
	return cards
}

func mapPage(dto pageDTO, fallbackType domain.MediaType) domain.Page {
	return domain.Page{
		Items:    mapResults(dto.Results, fallbackType),
		HasMore:  dto.HasMore,
		RawCount: len(dto.Results),
	}
}

func mapRootFolders(dtos []rootFolderDTO) []domain.RootFolder {
	folders := make([]domain.RootFolder, len(dtos))
	for i, dto := range dtos {
		folders[i] = domain.RootFolder{
			Path:      dto.Path,
			FreeSpace: dto.FreeSpace,
			IsDefault: dto.IsDefault,
		}
	}
	return folders
}

func mapQualityProfiles(dtos []qualityProfileDTO) []domain.QualityProfile {
	profiles := make([]domain.QualityProfile, len(dtos))
	for i, dto := range dtos {
		profiles[i] = domain.QualityProfile{ID: dto.ID, Name: dto.Name}
	}
	return profiles
}

func mapInstances(dtos []instanceDTO) []domain.Instance {
	instances := make([]domain.Instance, len(dtos))
	for i, dto := range dtos {
		instances[i] = domain.Instance{
			AppType: domain.AppType(dto.AppType),
			Name:    dto.Name,
			Enabled: dto.Enabled,
		}
	}
	return instances
}
