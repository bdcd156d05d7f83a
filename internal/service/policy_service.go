package service

import (
	"context"
	"time"

	"ai-chatbot-be/internal/dto"
	"ai-chatbot-be/internal/entity"
	"ai-chatbot-be/internal/pkg/serverutils"
	"ai-chatbot-be/internal/pkg/textutil"
	"ai-chatbot-be/internal/repository/specification"
	"ai-chatbot-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

type IPolicyService interface {
	List(ctx context.Context, policyType string) ([]*dto.PolicyResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.PolicyResponse, error)
	GetBySlug(ctx context.Context, slug string) (*dto.PolicyResponse, error)
	Create(ctx context.Context, request *dto.CreatePolicyRequest) (*dto.PolicyResponse, error)
	Update(ctx context.Context, id uuid.UUID, request *dto.UpdatePolicyRequest) (*dto.PolicyResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type policyService struct {
	uowFactory unitofwork.RepositoryFactory
	slugCache  *gocache.Cache
}

func NewPolicyService(uowFactory unitofwork.RepositoryFactory) IPolicyService {
	return &policyService{
		uowFactory: uowFactory,
		slugCache:  gocache.New(5*time.Minute, 10*time.Minute),
	}
}

func toPolicyResponse(p *entity.Policy) *dto.PolicyResponse {
	return &dto.PolicyResponse{
		Id:            p.Id,
		Title:         p.Title,
		Type:          string(p.Type),
		Slug:          p.Slug,
		Content:       p.Content,
		EffectiveDate: p.EffectiveDate,
		Author:        p.Author,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (s *policyService) List(ctx context.Context, policyType string) ([]*dto.PolicyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.PolicyDefaultOrder{},
	}
	if policyType != "" {
		specs = append([]specification.Specification{specification.ByPolicyType{Type: policyType}}, specs...)
	}

	policies, err := uow.PolicyRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.PolicyResponse, 0, len(policies))
	for _, p := range policies {
		response = append(response, toPolicyResponse(p))
	}
	return response, nil
}

func (s *policyService) GetByID(ctx context.Context, id uuid.UUID) (*dto.PolicyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	policy, err := uow.PolicyRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if policy == nil {
		return nil, serverutils.NotFound("Policy not found")
	}
	return toPolicyResponse(policy), nil
}

// GetBySlug serves public policy pages; hits are cached for five minutes.
func (s *policyService) GetBySlug(ctx context.Context, slug string) (*dto.PolicyResponse, error) {
	if cached, found := s.slugCache.Get(slug); found {
		return cached.(*dto.PolicyResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	policy, err := uow.PolicyRepository().FindOne(ctx, specification.BySlug{Slug: slug})
	if err != nil {
		return nil, err
	}
	if policy == nil {
		return nil, serverutils.NotFound("Policy not found")
	}

	response := toPolicyResponse(policy)
	s.slugCache.Set(slug, response, gocache.DefaultExpiration)
	return response, nil
}

func (s *policyService) Create(ctx context.Context, request *dto.CreatePolicyRequest) (*dto.PolicyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	slug := request.Slug
	if slug == "" {
		slug = textutil.DeriveSlug(request.Title)
	}

	policyType := entity.PolicyType(request.Type)
	if policyType == "" {
		policyType = entity.PolicyTypeOther
	}
	author := request.Author
	if author == "" {
		author = "system"
	}

	policy := entity.Policy{
		Id:            uuid.New(),
		Title:         request.Title,
		Type:          policyType,
		Slug:          slug,
		Content:       request.Content,
		EffectiveDate: request.EffectiveDate,
		Author:        author,
		CreatedAt:     time.Now(),
	}

	if err := uow.PolicyRepository().Create(ctx, &policy); err != nil {
		return nil, err
	}
	return toPolicyResponse(&policy), nil
}

func (s *policyService) Update(ctx context.Context, id uuid.UUID, request *dto.UpdatePolicyRequest) (*dto.PolicyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.PolicyRepository()

	policy, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if policy == nil {
		return nil, serverutils.NotFound("Policy not found")
	}

	staleSlug := policy.Slug

	if request.Title != nil {
		policy.Title = *request.Title
	}
	if request.Type != nil {
		policy.Type = entity.PolicyType(*request.Type)
	}
	if request.Slug != nil {
		policy.Slug = *request.Slug
	}
	if request.Content != nil {
		policy.Content = *request.Content
	}
	if request.EffectiveDate != nil {
		policy.EffectiveDate = request.EffectiveDate
	}
	if request.Author != nil {
		policy.Author = *request.Author
	}

	if err := repo.Update(ctx, policy); err != nil {
		return nil, err
	}

	s.slugCache.Delete(staleSlug)
	s.slugCache.Delete(policy.Slug)
	return toPolicyResponse(policy), nil
}

func (s *policyService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.PolicyRepository()

	policy, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if policy == nil {
		return serverutils.NotFound("Policy not found")
	}

	if err := repo.Delete(ctx, id); err != nil {
		return err
	}
	s.slugCache.Delete(policy.Slug)
	return nil
}
