package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/application/dto"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/application/ports"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/domain"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/domain/entity"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/domain/repository"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/pkg/jwt"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/pkg/logger"
)

// Config parámetros de emisión de tokens.
type Config struct {
	JWTSecret     string
	JWTIssuer     string
	JWTExpMinutes int
}

// UseCase registro, login y gestión de organizaciones.
type UseCase struct {
	users    repository.UserRepository
	orgs     repository.OrganizationRepository
	notifier ports.Notifier
	cfg      Config
	log      *logger.Logger
}

func NewUseCase(users repository.UserRepository, orgs repository.OrganizationRepository, notifier ports.Notifier, cfg Config, log *logger.Logger) *UseCase {
	return &UseCase{users: users, orgs: orgs, notifier: notifier, cfg: cfg, log: log}
}

// Register crea la cuenta con el password hasheado via bcrypt.
func (uc *UseCase) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, err := uc.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("buscando email: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hasheando password: %w", err)
	}

	now := time.Now().UTC()
	user := &entity.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		// Carrera contra otro registro con el mismo email.
		if err == domain.ErrDuplicate {
			return nil, domain.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("creando usuario: %w", err)
	}

	uc.log.Info().Str("user_id", user.ID).Msg("usuario registrado")
	uc.notifier.SendWelcome(user.Email, user.Name)

	resp := toUserResponse(user)
	return &resp, nil
}

// Login valida credenciales y emite el JWT con userID, orgID y rol.
func (uc *UseCase) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("buscando usuario: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, domain.ErrUnauthorized
	}

	role := ""
	if user.OrganizationID != "" {
		members, err := uc.orgs.ListMembers(ctx, user.OrganizationID)
		if err != nil {
			return nil, fmt.Errorf("listando miembros: %w", err)
		}
		for _, m := range members {
			if m.UserID == user.ID {
				role = m.Role
				break
			}
		}
	}

	token, err := jwt.Generate(uc.cfg.JWTSecret, user.ID, user.OrganizationID, role, uc.cfg.JWTIssuer, uc.cfg.JWTExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("emitiendo token: %w", err)
	}

	return &dto.LoginResponse{Token: token, User: toUserResponse(user)}, nil
}

// Me devuelve el perfil del usuario autenticado.
func (uc *UseCase) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// CreateOrganization crea la organización y registra al creador como owner.
func (uc *UseCase) CreateOrganization(ctx context.Context, userID string, req dto.CreateOrganizationRequest) (*dto.OrganizationResponse, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	now := time.Now().UTC()
	org := &entity.Organization{
		ID:        uuid.NewString(),
		Name:      req.Name,
		OwnerID:   userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.orgs.Create(ctx, org); err != nil {
		return nil, fmt.Errorf("creando organización: %w", err)
	}
	member := &entity.OrganizationMember{
		OrganizationID: org.ID,
		UserID:         userID,
		Role:           entity.RoleOwner,
		CreatedAt:      now,
	}
	if err := uc.orgs.AddMember(ctx, member); err != nil {
		return nil, fmt.Errorf("agregando owner: %w", err)
	}

	user.OrganizationID = org.ID
	user.UpdatedAt = now
	if err := uc.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("actualizando usuario: %w", err)
	}

	uc.log.Info().Str("org_id", org.ID).Str("owner_id", userID).Msg("organización creada")
	return &dto.OrganizationResponse{
		ID:        org.ID,
		Name:      org.Name,
		OwnerID:   org.OwnerID,
		CreatedAt: org.CreatedAt,
	}, nil
}

// AddMember agrega un usuario existente. Solo el owner puede invitar.
func (uc *UseCase) AddMember(ctx context.Context, organizationID, callerID string, req dto.AddMemberRequest) error {
	org, err := uc.orgs.GetByID(ctx, organizationID)
	if err != nil {
		return err
	}
	if org == nil {
		return domain.ErrNotFound
	}
	if org.OwnerID != callerID {
		return domain.ErrUnauthorized
	}

	user, err := uc.users.GetByID(ctx, req.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}

	role := req.Role
	if role == "" {
		role = entity.RoleMember
	}
	now := time.Now().UTC()
	member := &entity.OrganizationMember{
		OrganizationID: organizationID,
		UserID:         req.UserID,
		Role:           role,
		CreatedAt:      now,
	}
	if err := uc.orgs.AddMember(ctx, member); err != nil {
		return err
	}

	user.OrganizationID = organizationID
	user.UpdatedAt = now
	if err := uc.users.Update(ctx, user); err != nil {
		return fmt.Errorf("actualizando usuario: %w", err)
	}
	uc.log.Info().Str("org_id", organizationID).Str("user_id", req.UserID).Msg("miembro agregado")
	return nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		Name:           u.Name,
		OrganizationID: u.OrganizationID,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}
