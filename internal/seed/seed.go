package seed

import (
	"context"
	"fmt"

	"github.com/obiwandem/varsity-backend/internal/app/models"
	"github.com/obiwandem/varsity-backend/internal/app/repositories"
	"github.com/obiwandem/varsity-backend/internal/pkg/logger"
)

// facultySeed describes one faculty and its departments
type facultySeed struct {
	Name        string
	Code        string
	Departments []departmentSeed
}

type departmentSeed struct {
	Name string
	Code string
}

// directorySeeds is the initial faculty/department directory loaded on
// first-time setup.
var directorySeeds = []facultySeed{
	{
		Name: "Faculty of Science",
		Code: "SCI",
		Departments: []departmentSeed{
			{Name: "Computer Science", Code: "CSC"},
			{Name: "Mathematics", Code: "MTH"},
			{Name: "Physics", Code: "PHY"},
			{Name: "Microbiology", Code: "MCB"},
		},
	},
	{
		Name: "Faculty of Engineering",
		Code: "ENG",
		Departments: []departmentSeed{
			{Name: "Civil Engineering", Code: "CVE"},
			{Name: "Electrical Engineering", Code: "EEE"},
			{Name: "Mechanical Engineering", Code: "MEE"},
		},
	},
	{
		Name: "Faculty of Arts",
		Code: "ART",
		Departments: []departmentSeed{
			{Name: "English", Code: "ENG"},
			{Name: "History", Code: "HIS"},
		},
	},
	{
		Name: "Faculty of Social Sciences",
		Code: "SOC",
		Departments: []departmentSeed{
			{Name: "Economics", Code: "ECO"},
			{Name: "Political Science", Code: "POL"},
		},
	},
}

// SeedDirectory inserts the initial faculties and departments. It is only
// called against an empty directory, so conflicts are treated as errors.
func SeedDirectory(ctx context.Context, repos *repositories.Repositories) error {
	for _, fs := range directorySeeds {
		faculty := &models.Faculty{Name: fs.Name, Code: fs.Code, IsActive: true}
		facultyID, err := repos.FacultyRepository.Create(ctx, faculty)
		if err != nil {
			return fmt.Errorf("seeding faculty %s: %w", fs.Name, err)
		}

		for _, ds := range fs.Departments {
			department := &models.Department{
				FacultyID: facultyID,
				Name:      ds.Name,
				Code:      ds.Code,
			}
			if _, err := repos.DepartmentRepository.Create(ctx, department); err != nil {
				return fmt.Errorf("seeding department %s: %w", ds.Name, err)
			}
		}

		logger.Info().
			Str("faculty", fs.Name).
			Int("departments", len(fs.Departments)).
			Msg("Seeded faculty")
	}

	return nil
}
