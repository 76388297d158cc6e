package specification

import "gorm.io/gorm"

// TrialSearchQuery matches any of the search terms against a trial's title,
// description or conditions (case-insensitive). Terms combine with OR so a
// record matching any one of them qualifies.
type TrialSearchQuery struct {
	Terms []string
}

func (s TrialSearchQuery) Apply(db *gorm.DB) *gorm.DB {
	if len(s.Terms) == 0 {
		return db
	}
	query := db.Session(&gorm.Session{NewDB: true})
	for _, term := range s.Terms {
		pattern := "%" + term + "%"
		// conditions is a JSON column; casting to text keeps the match simple.
		query = query.Or("title ILIKE ? OR description ILIKE ? OR conditions::text ILIKE ?", pattern, pattern, pattern)
	}
	return db.Where(query)
}

// PublicationSearchQuery matches terms against title, abstract or authors.
type PublicationSearchQuery struct {
	Terms []string
}

func (s PublicationSearchQuery) Apply(db *gorm.DB) *gorm.DB {
	if len(s.Terms) == 0 {
		return db
	}
	query := db.Session(&gorm.Session{NewDB: true})
	for _, term := range s.Terms {
		pattern := "%" + term + "%"
		query = query.Or("title ILIKE ? OR abstract ILIKE ? OR authors::text ILIKE ?", pattern, pattern, pattern)
	}
	return db.Where(query)
}

// ResearcherSearchQuery matches terms against specialty and bio.
type ResearcherSearchQuery struct {
	Terms []string
}

func (s ResearcherSearchQuery) Apply(db *gorm.DB) *gorm.DB {
	if len(s.Terms) == 0 {
		return db
	}
	query := db.Session(&gorm.Session{NewDB: true})
	for _, term := range s.Terms {
		pattern := "%" + term + "%"
		query = query.Or("specialty ILIKE ? OR bio ILIKE ?", pattern, pattern)
	}
	return db.Where(query)
}

// ByResearcherName filters researchers by name (case-insensitive, partial)
type ByResearcherName struct {
	Name string
}

func (s ByResearcherName) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Name + "%"
	return db.Where("name ILIKE ?", pattern)
}

// ByLocation filters by location (case-insensitive, partial)
type ByLocation struct {
	Location string
}

func (s ByLocation) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Location + "%"
	return db.Where("location ILIKE ?", pattern)
}

// ByStatus filters trials by canonical recruitment status
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// ByPhase filters trials by canonical phase
type ByPhase struct {
	Phase string
}

func (s ByPhase) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("phase = ?", s.Phase)
}
