package googlecalendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rafaelpontes/focushub/internal/calendar"
	"github.com/rafaelpontes/focushub/internal/config"
	"github.com/rafaelpontes/focushub/internal/user"
	"golang.org/x/oauth2"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

var (
	ErrUserNotFound          = errors.New("user not found for calendar integration")
	ErrDecryptionFailed      = errors.New("failed to decrypt user's google token")
	ErrMissingCalendarTokens = errors.New("user has no google access token")
	// ErrProviderUnavailable wraps upstream failures; sync is retryable and
	// nothing local is touched when it fires.
	ErrProviderUnavailable = errors.New("google calendar unavailable")
)

type SyncService interface {
	AuthURL(state string) string
	Connect(ctx context.Context, userID uuid.UUID, code string) error
	Sync(ctx context.Context, userID uuid.UUID, from, to time.Time) (*SyncResult, error)
	Disconnect(ctx context.Context, userID uuid.UUID) error
}

type syncService struct {
	userRepo     user.UserRepository
	eventService calendar.EventService
	oauthConfig  *oauth2.Config
}

func NewSyncService(userRepo user.UserRepository, eventService calendar.EventService, oauthConfig *oauth2.Config) SyncService {
	return &syncService{
		userRepo:     userRepo,
		eventService: eventService,
		oauthConfig:  oauthConfig,
	}
}

func (s *syncService) AuthURL(state string) string {
	return s.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

func (s *syncService) Connect(ctx context.Context, userID uuid.UUID, code string) error {
	log := config.WithContext(ctx)

	u, err := s.userRepo.GetByID(userID.String())
	if err != nil {
		return err
	}
	if u == nil {
		return ErrUserNotFound
	}

	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		log.WithError(err).Error("Failed to exchange authorization code")
		return fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	}

	if err := s.storeToken(u, token); err != nil {
		return err
	}

	log.WithField("user_id", userID).Info("Google Calendar connected")
	return nil
}

func (s *syncService) storeToken(u *user.User, token *oauth2.Token) error {
	encAccess, err := config.Encrypt(token.AccessToken)
	if err != nil {
		return err
	}
	u.EncryptedGoogleAccessToken = encAccess

	if token.RefreshToken != "" {
		encRefresh, err := config.Encrypt(token.RefreshToken)
		if err != nil {
			return err
		}
		u.EncryptedGoogleRefreshToken = encRefresh
	}
	if !token.Expiry.IsZero() {
		expiry := token.Expiry
		u.GoogleTokenExpiry = &expiry
	}

	return s.userRepo.Update(u)
}

func (s *syncService) getCalendarClient(ctx context.Context, userID uuid.UUID) (*gcal.Service, error) {
	log := config.WithContext(ctx)

	u, err := s.userRepo.GetByID(userID.String())
	if err != nil {
		log.WithError(err).Error("Failed to retrieve user for calendar client")
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	if u.EncryptedGoogleAccessToken == "" {
		return nil, ErrMissingCalendarTokens
	}

	accessToken, err := config.Decrypt(u.EncryptedGoogleAccessToken)
	if err != nil {
		log.WithError(err).Error("Failed to decrypt access token")
		return nil, ErrDecryptionFailed
	}

	token := &oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	}
	if u.GoogleTokenExpiry != nil {
		token.Expiry = *u.GoogleTokenExpiry
	}
	if u.EncryptedGoogleRefreshToken != "" {
		refreshToken, err := config.Decrypt(u.EncryptedGoogleRefreshToken)
		if err != nil {
			log.WithError(err).Error("Failed to decrypt refresh token")
			return nil, ErrDecryptionFailed
		}
		token.RefreshToken = refreshToken
	}

	tokenSource := s.oauthConfig.TokenSource(ctx, token)
	newToken, err := tokenSource.Token()
	if err != nil {
		log.WithError(err).Error("Failed to refresh Google token")
		return nil, fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	}

	if newToken.AccessToken != accessToken {
		if err := s.storeToken(u, newToken); err != nil {
			log.WithError(err).Warn("Failed to persist refreshed Google token")
		}
	}

	client := oauth2.NewClient(ctx, tokenSource)
	srv, err := gcal.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		log.WithError(err).Error("Failed to create Calendar service client")
		return nil, err
	}

	return srv, nil
}

// Sync pulls the user's primary calendar for [from, to) and mirrors it into
// local events keyed by external id. Rows for cancelled upstream events are
// removed; everything else is upserted, never duplicated.
func (s *syncService) Sync(ctx context.Context, userID uuid.UUID, from, to time.Time) (*SyncResult, error) {
	log := config.WithContext(ctx)

	srv, err := s.getCalendarClient(ctx, userID)
	if err != nil {
		return nil, err
	}

	listing, err := srv.Events.List("primary").
		TimeMin(from.Format(time.RFC3339)).
		TimeMax(to.Format(time.RFC3339)).
		SingleEvents(true).
		ShowDeleted(true).
		Context(ctx).
		Do()
	if err != nil {
		log.WithError(err).Error("Failed to list Google Calendar events")
		return nil, fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	}

	result := &SyncResult{}
	for _, item := range listing.Items {
		if item.Status == "cancelled" {
			if err := s.eventService.RemoveGoogleEvent(ctx, userID, item.Id); err != nil {
				log.WithError(err).Warnf("Failed to remove cancelled event %s", item.Id)
				continue
			}
			result.Removed++
			continue
		}

		e, err := toLocalEvent(userID, item)
		if err != nil {
			log.WithError(err).Warnf("Skipping unparsable event %s", item.Id)
			continue
		}
		if _, err := s.eventService.UpsertGoogleEvent(ctx, e); err != nil {
			log.WithError(err).Warnf("Failed to upsert event %s", item.Id)
			continue
		}
		result.Synced++
	}

	log.WithFields(map[string]interface{}{
		"user_id": userID,
		"synced":  result.Synced,
		"removed": result.Removed,
	}).Info("Google Calendar sync complete")
	return result, nil
}

func toLocalEvent(userID uuid.UUID, item *gcal.Event) (*calendar.Event, error) {
	start, allDay, err := parseEventTime(item.Start)
	if err != nil {
		return nil, err
	}
	end, _, err := parseEventTime(item.End)
	if err != nil {
		return nil, err
	}

	googleID := item.Id
	return &calendar.Event{
		UserID:        userID,
		Title:         item.Summary,
		Description:   item.Description,
		StartTime:     start,
		EndTime:       end,
		AllDay:        allDay,
		Source:        calendar.SourceGoogle,
		GoogleEventID: &googleID,
	}, nil
}

func parseEventTime(edt *gcal.EventDateTime) (time.Time, bool, error) {
	if edt == nil {
		return time.Time{}, false, errors.New("event has no time")
	}
	if edt.DateTime != "" {
		t, err := time.Parse(time.RFC3339, edt.DateTime)
		return t, false, err
	}
	t, err := time.Parse("2006-01-02", edt.Date)
	return t, true, err
}

func (s *syncService) Disconnect(ctx context.Context, userID uuid.UUID) error {
	log := config.WithContext(ctx)

	u, err := s.userRepo.GetByID(userID.String())
	if err != nil {
		return err
	}
	if u == nil {
		return ErrUserNotFound
	}

	u.EncryptedGoogleAccessToken = ""
	u.EncryptedGoogleRefreshToken = ""
	u.GoogleTokenExpiry = nil
	if err := s.userRepo.Update(u); err != nil {
		return err
	}

	if err := s.eventService.RemoveAllGoogleEvents(ctx, userID); err != nil {
		log.WithError(err).Error("Failed to remove synced events")
		return err
	}

	log.WithField("user_id", userID).Info("Google Calendar disconnected")
	return nil
}
