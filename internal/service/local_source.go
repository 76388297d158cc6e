package service

import (
	"context"

	"medisearch-be/internal/entity"
	"medisearch-be/internal/repository/specification"
	"medisearch-be/internal/repository/unitofwork"
	"medisearch-be/pkg/fedsearch"
)

// Result caps for the local store. The internal-only selector means "show
// me everything we have", so its cap is higher than the per-source share
// used during a federated fan-out.
const (
	localResultLimit        = 10
	localInternalOnlyResult = 50
)

// localTrialSource adapts the trial repository to the fan-out Source
// contract. It always reports SourceInternal and marks records internal.
type localTrialSource struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewLocalTrialSource(uowFactory unitofwork.RepositoryFactory) fedsearch.Source[fedsearch.Trial] {
	return &localTrialSource{uowFactory: uowFactory}
}

func (s *localTrialSource) Name() string { return fedsearch.SourceInternal }

func (s *localTrialSource) Fetch(ctx context.Context, q fedsearch.Query) ([]fedsearch.Trial, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: localLimit(q)},
	}
	// Internal-only browsing ignores the term match.
	if !q.InternalOnly() && len(q.Terms) > 0 {
		specs = append(specs, specification.TrialSearchQuery{Terms: q.Terms})
	}
	if q.Location != "" {
		specs = append(specs, specification.ByLocation{Location: q.Location})
	}
	if q.Status != "" {
		specs = append(specs, specification.ByStatus{Status: string(q.Status)})
	}
	if q.Phase != "" {
		specs = append(specs, specification.ByPhase{Phase: string(q.Phase)})
	}

	trials, err := uow.TrialRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	out := make([]fedsearch.Trial, 0, len(trials))
	for _, t := range trials {
		out = append(out, toCanonicalTrial(t))
	}
	return out, nil
}

// localPublicationSource adapts the publication repository to the fan-out
// Source contract.
type localPublicationSource struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewLocalPublicationSource(uowFactory unitofwork.RepositoryFactory) fedsearch.Source[fedsearch.Publication] {
	return &localPublicationSource{uowFactory: uowFactory}
}

func (s *localPublicationSource) Name() string { return fedsearch.SourceInternal }

func (s *localPublicationSource) Fetch(ctx context.Context, q fedsearch.Query) ([]fedsearch.Publication, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "published_date", Desc: true},
		specification.Pagination{Limit: localLimit(q)},
	}
	if !q.InternalOnly() && len(q.Terms) > 0 {
		specs = append(specs, specification.PublicationSearchQuery{Terms: q.Terms})
	}

	pubs, err := uow.PublicationRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	out := make([]fedsearch.Publication, 0, len(pubs))
	for _, p := range pubs {
		out = append(out, toCanonicalPublication(p))
	}
	return out, nil
}

// localResearcherSource adapts the researcher repository to the fan-out
// Source contract. Location is deliberately not a filter here; proximity
// is a ranking concern, not a match concern.
type localResearcherSource struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewLocalResearcherSource(uowFactory unitofwork.RepositoryFactory) fedsearch.Source[fedsearch.Researcher] {
	return &localResearcherSource{uowFactory: uowFactory}
}

func (s *localResearcherSource) Name() string { return fedsearch.SourceInternal }

func (s *localResearcherSource) Fetch(ctx context.Context, q fedsearch.Query) ([]fedsearch.Researcher, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "publication_count", Desc: true},
		specification.Pagination{Limit: localLimit(q)},
	}
	if !q.InternalOnly() && len(q.Terms) > 0 {
		specs = append(specs, specification.ResearcherSearchQuery{Terms: q.Terms})
	}
	if q.NameFilter != "" {
		specs = append(specs, specification.ByResearcherName{Name: q.NameFilter})
	}

	researchers, err := uow.ResearcherRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	out := make([]fedsearch.Researcher, 0, len(researchers))
	for _, r := range researchers {
		out = append(out, toCanonicalResearcher(r))
	}
	return out, nil
}

func localLimit(q fedsearch.Query) int {
	if q.InternalOnly() {
		return localInternalOnlyResult
	}
	return localResultLimit
}

func toCanonicalTrial(t *entity.Trial) fedsearch.Trial {
	// Surface the registry ID when we have one so the merge step can
	// collapse this record with its ClinicalTrials.gov copy.
	id := t.Id.String()
	if t.NctId != nil && *t.NctId != "" {
		id = *t.NctId
	}
	location := t.Location
	if location == "" {
		location = fedsearch.NotSpecified
	}
	return fedsearch.Trial{
		ID:                    id,
		Title:                 t.Title,
		Description:           t.Description,
		Status:                fedsearch.TrialStatus(t.Status),
		Phase:                 fedsearch.TrialPhase(t.Phase),
		Location:              location,
		Conditions:            t.Conditions,
		StartDate:             t.StartDate,
		CompletionDate:        t.CompletionDate,
		Sponsor:               t.Sponsor,
		PrincipalInvestigator: t.PrincipalInvestigator,
		SourceName:            fedsearch.SourceInternal,
		IsInternal:            true,
	}
}

func toCanonicalPublication(p *entity.Publication) fedsearch.Publication {
	pub := fedsearch.Publication{
		ID:            p.Id.String(),
		Title:         p.Title,
		Abstract:      p.Abstract,
		Authors:       p.Authors,
		Journal:       p.Journal,
		PublishedDate: p.PublishedDate,
		URL:           p.Url,
		SourceName:    fedsearch.SourceInternal,
		IsInternal:    true,
	}
	if p.Doi != nil {
		pub.DOI = *p.Doi
	}
	if p.Pmid != nil {
		pub.PMID = *p.Pmid
	}
	return pub
}

func toCanonicalResearcher(r *entity.Researcher) fedsearch.Researcher {
	location := r.Location
	if location == "" {
		location = fedsearch.NotSpecified
	}
	return fedsearch.Researcher{
		ID:               r.Id.String(),
		Name:             r.Name,
		Affiliation:      r.Affiliation,
		Specialty:        r.Specialty,
		Location:         location,
		PublicationCount: r.PublicationCount,
		TrialCount:       r.TrialCount,
		Bio:              r.Bio,
		IsInternal:       true,
		SourceName:       fedsearch.SourceInternal,
	}
}
