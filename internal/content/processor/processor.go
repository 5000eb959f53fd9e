package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"strings"

	"gepe-server/internal/clients/media"
	"gepe-server/internal/observability"
	"gepe-server/internal/store"
)

// ContentStore defines the database operations required by ContentProcessor
type ContentStore interface {
	ListActiveHeroMedia(ctx context.Context) ([]store.HeroMedia, error)
	ListHeroMedia(ctx context.Context) ([]store.HeroMedia, error)
	CreateHeroMedia(ctx context.Context, media store.HeroMedia) (store.HeroMedia, error)
	UpdateHeroMedia(ctx context.Context, id int64, params store.UpdateHeroMediaParams) (store.HeroMedia, error)
	DeleteHeroMedia(ctx context.Context, id int64) error

	ListActivePromoBanners(ctx context.Context) ([]store.PromoBanner, error)
	ListPromoBanners(ctx context.Context) ([]store.PromoBanner, error)
	CreatePromoBanner(ctx context.Context, message string, isActive bool, displayOrder int64) (store.PromoBanner, error)
	UpdatePromoBanner(ctx context.Context, id int64, params store.UpdatePromoBannerParams) (store.PromoBanner, error)
	DeletePromoBanner(ctx context.Context, id int64) error

	GetBannerSettings(ctx context.Context) (store.PromoBannerSettings, error)
	UpdateBannerSettings(ctx context.Context, seconds int64) (store.PromoBannerSettings, error)
}

// MediaUploader defines the asset upload operations required by ContentProcessor
type MediaUploader interface {
	IsEnabled() bool
	UploadImage(ctx context.Context, file interface{}, folder string) (string, string, error)
	UploadVideo(ctx context.Context, file interface{}, folder string) (string, string, error)
}

// Revalidator notifies the storefront after hero content changes
type Revalidator interface {
	RevalidateHero(ctx context.Context) bool
}

var (
	ErrHeroMediaNotFound    = errors.New("hero media not found")
	ErrBannerNotFound       = errors.New("promo banner not found")
	ErrImageURLRequired     = errors.New("image url is required")
	ErrIntervalTooShort     = errors.New("rotation interval below one second")
	ErrIntervalTooLong      = errors.New("rotation interval above sixty seconds")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrUploadsDisabled      = errors.New("media uploads are not configured")
)

type ContentProcessor struct {
	store    ContentStore
	uploader MediaUploader
	frontend Revalidator
	logger   *observability.Logger
}

func New(store ContentStore, uploader MediaUploader, frontend Revalidator, logger *observability.Logger) ContentProcessor {
	return ContentProcessor{
		store:    store,
		uploader: uploader,
		frontend: frontend,
		logger:   logger,
	}
}

// ListActiveHeroMedia returns the slides shown on the storefront hero,
// ordered for display. A fresh database is seeded with demo slides so the
// hero never renders empty.
func (p *ContentProcessor) ListActiveHeroMedia(ctx context.Context) ([]store.HeroMedia, error) {
	if err := p.ensureDefaultHeroMedia(ctx); err != nil {
		return nil, err
	}
	slides, err := p.store.ListActiveHeroMedia(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list active hero media", err)
		return nil, err
	}
	return slides, nil
}

// ListAllHeroMedia returns every slide for the admin panel, active or not.
func (p *ContentProcessor) ListAllHeroMedia(ctx context.Context) ([]store.HeroMedia, error) {
	if err := p.ensureDefaultHeroMedia(ctx); err != nil {
		return nil, err
	}
	slides, err := p.store.ListHeroMedia(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list hero media", err)
		return nil, err
	}
	return slides, nil
}

// CreateHeroMediaRequest carries the fields of a new hero slide
type CreateHeroMediaRequest struct {
	Title              string
	Subtitle           *string
	Highlight          *string
	ImageURL           string
	VideoURL           *string
	LinkURL            *string
	ImageFocusX        int64
	ImageFocusY        int64
	ImageZoom          int64
	IsActive           bool
	DisplayOrder       int64
	ShowOverlay        bool
	AspectRatioDesktop string
	AspectRatioMobile  string
}

func (p *ContentProcessor) CreateHeroMedia(ctx context.Context, req CreateHeroMediaRequest) (store.HeroMedia, error) {
	if strings.TrimSpace(req.ImageURL) == "" {
		return store.HeroMedia{}, ErrImageURLRequired
	}

	created, err := p.store.CreateHeroMedia(ctx, store.HeroMedia{
		Title:              req.Title,
		Subtitle:           req.Subtitle,
		Highlight:          req.Highlight,
		ImageURL:           req.ImageURL,
		VideoURL:           req.VideoURL,
		LinkURL:            req.LinkURL,
		ImageFocusX:        req.ImageFocusX,
		ImageFocusY:        req.ImageFocusY,
		ImageZoom:          req.ImageZoom,
		IsActive:           req.IsActive,
		DisplayOrder:       req.DisplayOrder,
		ShowOverlay:        req.ShowOverlay,
		AspectRatioDesktop: req.AspectRatioDesktop,
		AspectRatioMobile:  req.AspectRatioMobile,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create hero media", err)
		return store.HeroMedia{}, err
	}
	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "hero_media_id", Value: created.ID}), "hero media created")
	p.frontend.RevalidateHero(ctx)
	return created, nil
}

func (p *ContentProcessor) UpdateHeroMedia(ctx context.Context, id int64, params store.UpdateHeroMediaParams) (store.HeroMedia, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "hero_media_id", Value: id})

	updated, err := p.store.UpdateHeroMedia(ctx, id, params)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.HeroMedia{}, ErrHeroMediaNotFound
		}
		p.logger.Error(ctx, "failed to update hero media", err)
		return store.HeroMedia{}, err
	}
	p.frontend.RevalidateHero(ctx)
	return updated, nil
}

func (p *ContentProcessor) DeleteHeroMedia(ctx context.Context, id int64) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "hero_media_id", Value: id})

	if err := p.store.DeleteHeroMedia(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrHeroMediaNotFound
		}
		p.logger.Error(ctx, "failed to delete hero media", err)
		return err
	}
	p.logger.Info(ctx, "hero media deleted")
	p.frontend.RevalidateHero(ctx)
	return nil
}

// UploadedAsset describes the stored location of an uploaded hero asset
type UploadedAsset struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
	Type     string `json:"type"`
}

// UploadHeroAsset stores an image or video for the hero carousel. The asset
// kind is taken from the request content type.
func (p *ContentProcessor) UploadHeroAsset(ctx context.Context, file interface{}, contentType string) (UploadedAsset, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "content_type", Value: contentType})

	isImage := strings.HasPrefix(contentType, "image/")
	isVideo := strings.HasPrefix(contentType, "video/")
	if !isImage && !isVideo {
		return UploadedAsset{}, ErrUnsupportedMediaType
	}
	if !p.uploader.IsEnabled() {
		p.logger.Warn(ctx, "hero asset upload requested but uploads are not configured")
		return UploadedAsset{}, ErrUploadsDisabled
	}

	var (
		url      string
		publicID string
		err      error
	)
	assetType := "image"
	if isVideo {
		assetType = "video"
		url, publicID, err = p.uploader.UploadVideo(ctx, file, media.FolderHero)
	} else {
		url, publicID, err = p.uploader.UploadImage(ctx, file, media.FolderHero)
	}
	if err != nil {
		p.logger.Error(ctx, "failed to upload hero asset", err)
		return UploadedAsset{}, err
	}

	return UploadedAsset{URL: url, PublicID: publicID, Type: assetType}, nil
}

// ListActivePromoBanners returns the rotating announcement messages shown on
// the storefront, seeding demo messages on an empty database.
func (p *ContentProcessor) ListActivePromoBanners(ctx context.Context) ([]store.PromoBanner, error) {
	if err := p.ensureDefaultBanners(ctx); err != nil {
		return nil, err
	}
	banners, err := p.store.ListActivePromoBanners(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list active promo banners", err)
		return nil, err
	}
	return banners, nil
}

// ListAllPromoBanners returns every banner for the admin panel.
func (p *ContentProcessor) ListAllPromoBanners(ctx context.Context) ([]store.PromoBanner, error) {
	if err := p.ensureDefaultBanners(ctx); err != nil {
		return nil, err
	}
	banners, err := p.store.ListPromoBanners(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list promo banners", err)
		return nil, err
	}
	return banners, nil
}

func (p *ContentProcessor) CreatePromoBanner(ctx context.Context, message string, isActive bool, displayOrder int64) (store.PromoBanner, error) {
	banner, err := p.store.CreatePromoBanner(ctx, message, isActive, displayOrder)
	if err != nil {
		p.logger.Error(ctx, "failed to create promo banner", err)
		return store.PromoBanner{}, err
	}
	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "banner_id", Value: banner.ID}), "promo banner created")
	return banner, nil
}

func (p *ContentProcessor) UpdatePromoBanner(ctx context.Context, id int64, params store.UpdatePromoBannerParams) (store.PromoBanner, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "banner_id", Value: id})

	banner, err := p.store.UpdatePromoBanner(ctx, id, params)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.PromoBanner{}, ErrBannerNotFound
		}
		p.logger.Error(ctx, "failed to update promo banner", err)
		return store.PromoBanner{}, err
	}
	return banner, nil
}

func (p *ContentProcessor) DeletePromoBanner(ctx context.Context, id int64) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "banner_id", Value: id})

	if err := p.store.DeletePromoBanner(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrBannerNotFound
		}
		p.logger.Error(ctx, "failed to delete promo banner", err)
		return err
	}
	p.logger.Info(ctx, "promo banner deleted")
	return nil
}

// GetBannerSettings returns the announcement bar rotation settings.
func (p *ContentProcessor) GetBannerSettings(ctx context.Context) (store.PromoBannerSettings, error) {
	settings, err := p.store.GetBannerSettings(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to get banner settings", err)
		return store.PromoBannerSettings{}, err
	}
	return settings, nil
}

// UpdateBannerSettings changes the rotation interval, clamped to 1..60 seconds.
func (p *ContentProcessor) UpdateBannerSettings(ctx context.Context, seconds int64) (store.PromoBannerSettings, error) {
	if seconds < 1 {
		return store.PromoBannerSettings{}, ErrIntervalTooShort
	}
	if seconds > 60 {
		return store.PromoBannerSettings{}, ErrIntervalTooLong
	}

	settings, err := p.store.UpdateBannerSettings(ctx, seconds)
	if err != nil {
		p.logger.Error(ctx, "failed to update banner settings", err)
		return store.PromoBannerSettings{}, err
	}
	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "interval_seconds", Value: seconds}), "banner settings updated")
	return settings, nil
}

// ensureDefaultHeroMedia seeds demo slides once so fresh installs render a
// populated hero.
func (p *ContentProcessor) ensureDefaultHeroMedia(ctx context.Context) error {
	existing, err := p.store.ListHeroMedia(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to check hero media for seeding", err)
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	subtitle1 := "ES LA NUESTRA"
	highlight1 := "CAMISETA"
	subtitle2 := "SOMOS PARTE DEL EQUIPO"
	highlight2 := "VIVIMOS"
	defaults := []store.HeroMedia{
		{
			Title:        "NO ES SOLO UNA CAMISETA",
			Subtitle:     &subtitle1,
			Highlight:    &highlight1,
			ImageURL:     "/hero-banner-hd.jpg",
			DisplayOrder: 0,
		},
		{
			Title:        "NO LAS VENDEMOS, LAS VIVIMOS",
			Subtitle:     &subtitle2,
			Highlight:    &highlight2,
			ImageURL:     "/hero-banner-hd.jpg",
			DisplayOrder: 1,
		},
	}
	for i := range defaults {
		defaults[i].ImageFocusX = 50
		defaults[i].ImageFocusY = 50
		defaults[i].ImageZoom = 100
		defaults[i].IsActive = true
		defaults[i].ShowOverlay = true
		defaults[i].AspectRatioDesktop = "16:6"
		defaults[i].AspectRatioMobile = "4:3"
	}
	for _, slide := range defaults {
		if _, err := p.store.CreateHeroMedia(ctx, slide); err != nil {
			p.logger.Error(ctx, "failed to seed default hero media", err)
			return err
		}
	}
	p.logger.Info(ctx, "seeded default hero media")
	return nil
}

// ensureDefaultBanners seeds demo announcement messages once.
func (p *ContentProcessor) ensureDefaultBanners(ctx context.Context) error {
	existing, err := p.store.ListPromoBanners(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to check promo banners for seeding", err)
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	defaults := []string{
		"🚚 Envíos gratis a partir de $100.000",
		"💳 3 cuotas sin interés",
		"🏦 Recibimos solo Transferencia por ahora",
	}
	for i, message := range defaults {
		if _, err := p.store.CreatePromoBanner(ctx, message, true, int64(i)); err != nil {
			p.logger.Error(ctx, "failed to seed default promo banners", err)
			return err
		}
	}
	p.logger.Info(ctx, "seeded default promo banners")
	return nil
}
