package main

import (
	"context"
	"log"
	"os"
	"time"

	"medisearch-be/internal/entity"
	"medisearch-be/internal/repository/implementation"
	"medisearch-be/pkg/database"
	"medisearch-be/pkg/fedsearch"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func strPtr(s string) *string { return &s }

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDB(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	ctx := context.Background()
	trialRepo := implementation.NewTrialRepository(db)
	publicationRepo := implementation.NewPublicationRepository(db)
	researcherRepo := implementation.NewResearcherRepository(db)

	trials := []entity.Trial{
		{
			Id:                    uuid.New(),
			NctId:                 strPtr("NCT05512345"),
			Title:                 "Metformin and Exercise in Early Type 2 Diabetes",
			Description:           "A randomized controlled trial comparing metformin plus structured exercise against metformin alone in adults with newly diagnosed type 2 diabetes.",
			Status:                string(fedsearch.StatusRecruiting),
			Phase:                 string(fedsearch.Phase3),
			Location:              "Boston, USA",
			Conditions:            []string{"Type 2 Diabetes", "Obesity"},
			StartDate:             datePtr(2025, time.March, 1),
			Sponsor:               "Harborview Medical Research Institute",
			PrincipalInvestigator: "Dr. Elena Vasquez",
		},
		{
			Id:                    uuid.New(),
			Title:                 "CAR-T Consolidation in Relapsed B-Cell Lymphoma",
			Description:           "Single-arm study of consolidative CAR-T therapy following salvage chemotherapy in relapsed diffuse large B-cell lymphoma.",
			Status:                string(fedsearch.StatusActiveNotRecruiting),
			Phase:                 string(fedsearch.Phase2),
			Location:              "Toronto, Canada",
			Conditions:            []string{"Lymphoma", "B-Cell Lymphoma"},
			StartDate:             datePtr(2024, time.September, 15),
			Sponsor:               "Ontario Oncology Network",
			PrincipalInvestigator: "Dr. Samuel Okafor",
		},
	}

	publications := []entity.Publication{
		{
			Id:            uuid.New(),
			Title:         "Long-term Outcomes of SGLT2 Inhibitors in Heart Failure",
			Abstract:      "We report five-year follow-up data on SGLT2 inhibitor therapy in patients with heart failure with reduced ejection fraction.",
			Authors:       []string{"Elena Vasquez", "Priya Raman", "Thomas Lindgren"},
			Journal:       "Journal of Cardiovascular Medicine",
			PublishedDate: datePtr(2025, time.January, 12),
			Doi:           strPtr("10.1001/jcm.2025.0112"),
			Pmid:          strPtr("39812345"),
			Url:           "https://example.org/publications/sglt2-hf-outcomes",
		},
	}

	researchers := []entity.Researcher{
		{
			Id:               uuid.New(),
			Name:             "Elena Vasquez",
			Affiliation:      "Harborview Medical Research Institute",
			Specialty:        "Endocrinology",
			Location:         "Boston, USA",
			Bio:              "Clinical endocrinologist focused on metabolic disease trials.",
			PublicationCount: 48,
			TrialCount:       7,
		},
		{
			Id:               uuid.New(),
			Name:             "Samuel Okafor",
			Affiliation:      "Ontario Oncology Network",
			Specialty:        "Hematologic Oncology",
			Location:         "Toronto, Canada",
			Bio:              "Leads cellular therapy programs for relapsed lymphoma.",
			PublicationCount: 91,
			TrialCount:       12,
		},
	}

	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	for i := range trials {
		if err := trialRepo.Create(ctx, &trials[i]); err != nil {
			log.Printf("%s trial %q: %v", red("FAIL"), trials[i].Title, err)
			continue
		}
		log.Printf("%s trial %q", green("OK"), trials[i].Title)
	}
	for i := range publications {
		if err := publicationRepo.Create(ctx, &publications[i]); err != nil {
			log.Printf("%s publication %q: %v", red("FAIL"), publications[i].Title, err)
			continue
		}
		log.Printf("%s publication %q", green("OK"), publications[i].Title)
	}
	for i := range researchers {
		if err := researcherRepo.Create(ctx, &researchers[i]); err != nil {
			log.Printf("%s researcher %q: %v", red("FAIL"), researchers[i].Name, err)
			continue
		}
		log.Printf("%s researcher %q", green("OK"), researchers[i].Name)
	}

	log.Println(green("✅ Seed complete"))
}
