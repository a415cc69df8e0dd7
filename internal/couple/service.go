package couple

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/vicinato-api/internal/apperr"
	"github.com/saulo-duarte/vicinato-api/internal/config"
	"github.com/saulo-duarte/vicinato-api/internal/identity"
	"github.com/saulo-duarte/vicinato-api/internal/profile"
)

const msgAlreadyExists = "a relationship or request already exists with this user"

type EmailLookup interface {
	LookupUserIDByEmail(ctx context.Context, email string) (uuid.UUID, error)
}

type ProfileReader interface {
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]profile.Profile, error)
}

type Service interface {
	Request(ctx context.Context, requesterID uuid.UUID, partnerEmail string) (*Relationship, error)
	Accept(ctx context.Context, id, userID uuid.UUID) (*Relationship, error)
	Reject(ctx context.Context, id, userID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID) ([]RelationshipResponse, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
	FindAcceptedPartner(ctx context.Context, userID uuid.UUID) (*uuid.UUID, error)
}

type service struct {
	repo     Repository
	uow      UnitOfWork
	users    EmailLookup
	profiles ProfileReader
}

func NewService(repo Repository, uow UnitOfWork, users EmailLookup, profiles ProfileReader) Service {
	return &service{repo: repo, uow: uow, users: users, profiles: profiles}
}

// Request creates a pending relationship from the requester to the user
// behind partnerEmail. The partner's profile is created when missing, in
// the same transaction as the relationship.
func (s *service) Request(ctx context.Context, requesterID uuid.UUID, partnerEmail string) (*Relationship, error) {
	log := config.WithContext(ctx)

	partnerID, err := s.users.LookupUserIDByEmail(ctx, partnerEmail)
	if err != nil {
		if errors.Is(err, identity.ErrUserNotFound) {
			log.Warn("Pairing requested for unknown email")
			return nil, apperr.NotFound("partner not found")
		}
		log.WithError(err).Error("Failed to look up partner by email")
		return nil, apperr.Upstream("could not send the connection request", err)
	}

	if partnerID == requesterID {
		return nil, apperr.BadRequest("you cannot send a request to yourself")
	}

	rel := &Relationship{
		ID:        uuid.New(),
		User1ID:   requesterID,
		User2ID:   partnerID,
		Status:    StatusPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	err = s.uow.Do(ctx, func(profiles profile.Repository, rels Repository) error {
		existing, err := rels.FindBetween(ctx, requesterID, partnerID)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
		if existing != nil {
			return apperr.Conflict(msgAlreadyExists)
		}

		if err := profiles.EnsureExists(ctx, partnerID, localPart(partnerEmail)); err != nil {
			log.WithError(err).Error("Failed to create partner profile")
			return apperr.Upstream("could not set up the partner", err)
		}
		return rels.Create(ctx, rel)
	})
	if err != nil {
		var appErr *apperr.Error
		switch {
		case errors.As(err, &appErr):
			return nil, appErr
		case config.IsUniqueViolation(err):
			return nil, apperr.Conflict(msgAlreadyExists)
		default:
			log.WithError(err).Error("Failed to send connection request")
			return nil, apperr.Upstream("could not send the connection request", err)
		}
	}

	log.WithFields(logrus.Fields{
		"relationship_id": rel.ID,
		"partner_id":      partnerID,
	}).Info("Connection request sent")
	return rel, nil
}

func localPart(email string) string {
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return email
}

func (s *service) Accept(ctx context.Context, id, userID uuid.UUID) (*Relationship, error) {
	log := config.WithContext(ctx).WithField("relationship_id", id)

	rel, err := s.repo.Accept(ctx, id, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("Accept matched no request for this recipient")
			return nil, apperr.NotFound("request not found or permission denied")
		}
		log.WithError(err).Error("Failed to accept request")
		return nil, apperr.Upstream("could not accept the request", err)
	}

	log.Info("Connection request accepted")
	return rel, nil
}

func (s *service) Reject(ctx context.Context, id, _ uuid.UUID) error {
	config.WithContext(ctx).WithField("relationship_id", id).Warn("Reject called but not implemented")
	return apperr.New(apperr.ErrNotImplemented, "rejecting a request is not implemented")
}

func (s *service) List(ctx context.Context, userID uuid.UUID) ([]RelationshipResponse, error) {
	log := config.WithContext(ctx)

	rels, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to list relationships")
		return nil, apperr.Upstream("could not fetch couple relationships", err)
	}

	seen := map[uuid.UUID]bool{}
	var ids []uuid.UUID
	for _, rel := range rels {
		for _, id := range []uuid.UUID{rel.User1ID, rel.User2ID} {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}

	profiles, err := s.profiles.FindByIDs(ctx, ids)
	if err != nil {
		log.WithError(err).Error("Failed to load relationship profiles")
		return nil, apperr.Upstream("could not fetch couple relationships", err)
	}
	names := make(map[uuid.UUID]*ProfileSummary, len(profiles))
	for _, p := range profiles {
		names[p.ID] = &ProfileSummary{FullName: p.FullName}
	}

	out := make([]RelationshipResponse, 0, len(rels))
	for _, rel := range rels {
		out = append(out, RelationshipResponse{
			Relationship: rel,
			User1Profile: names[rel.User1ID],
			User2Profile: names[rel.User2ID],
		})
	}
	return out, nil
}

func (s *service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	log := config.WithContext(ctx).WithField("relationship_id", id)

	if err := s.repo.DeleteForUser(ctx, id, userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperr.NotFound("relationship not found")
		}
		log.WithError(err).Error("Failed to delete relationship")
		return apperr.Upstream("could not delete the relationship", err)
	}

	log.Info("Relationship deleted")
	return nil
}

// FindAcceptedPartner returns nil when userID has no accepted partner.
func (s *service) FindAcceptedPartner(ctx context.Context, userID uuid.UUID) (*uuid.UUID, error) {
	rel, err := s.repo.FindAccepted(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	partner := rel.PartnerOf(userID)
	return &partner, nil
}
