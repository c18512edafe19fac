package loadtest

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"

	"github.com/google/uuid"

	"github.com/okian/spithack/internal/domain/submission"
	"github.com/okian/spithack/internal/domain/wizard"
	"github.com/okian/spithack/pkg/logger"
)

// Form shapes, picked uniformly.
const (
	shapeIndividual = iota
	shapeTeamCreate
	shapeTeamJoin
	shapeRepository
	shapeAssets
	shapeDemo
	shapeCount
)

var (
	firstNames   = []string{"Aarav", "Diya", "Ishaan", "Meera", "Kabir", "Ananya", "Vihaan", "Saanvi"}
	lastNames    = []string{"Shah", "Iyer", "Patel", "Desai", "Kulkarni", "Menon", "Joshi", "Rao"}
	institutions = []string{"SPIT", "VJTI", "IIT Bombay", "DJ Sanghvi", "KJ Somaiya"}
	projectWords = []string{"Eco", "Med", "Learn", "Farm", "Safe", "Chain", "Pulse", "Civic"}
)

// randIntn returns a uniform int in [0, n) using crypto/rand.
func randIntn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(v.Int64())
}

func pick[T any](xs []T) T {
	return xs[randIntn(len(xs))]
}

func pickOption(opts []wizard.Option) string {
	return pick(opts).Value
}

// generateForms builds n valid forms, each with a fresh idempotency key.
func generateForms(ctx context.Context, n int, stats *Stats) ([]Form, error) {
	logger.Get().Info(ctx, "generating forms", logger.Int("numForms", n))

	forms := make([]Form, n)
	for i := range forms {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("context cancelled during form generation: %w", err)
		}
		forms[i] = generateSingleForm(i, uuid.NewString())
	}

	stats.Generated = len(forms)
	logger.Get().Info(ctx, "generated forms successfully", logger.Int("count", len(forms)))
	return forms, nil
}

// generateSingleForm builds the index-th form. The shape cycles so every
// kind of form is exercised even in small runs.
func generateSingleForm(index int, key string) Form {
	f := Form{Key: key}
	switch index % shapeCount {
	case shapeIndividual:
		reg := wizard.Registration{Kind: wizard.KindIndividual, Individual: &wizard.IndividualRegistration{
			Personal: generatePersonal(index),
			Skills: wizard.SkillsInfo{
				PrimarySkill: pickOption(wizard.SkillOptions()),
				Experience:   pickOption(wizard.ExperienceOptions()),
				GitHub:       "https://github.com/participant" + strconv.Itoa(index),
			},
			Preferences: wizard.Preferences{
				Track:          pickOption(wizard.TrackOptions()),
				TeamPreference: pickOption(wizard.TeamPreferenceOptions()),
				TShirtSize:     pickOption(wizard.TShirtOptions()),
				TermsAccepted:  true,
			},
		}}
		f.Registration = &reg
	case shapeTeamCreate:
		size, _ := strconv.Atoi(pickOption(wizard.TeamSizeOptions()))
		reg := wizard.Registration{Kind: wizard.KindTeamCreate, TeamCreate: &wizard.TeamCreation{
			TeamName:        pick(projectWords) + " Squad " + strconv.Itoa(index),
			TeamDescription: "Load test team",
			TeamSize:        size,
			Leader:          generatePersonal(index),
		}}
		f.Registration = &reg
	case shapeTeamJoin:
		reg := wizard.Registration{Kind: wizard.KindTeamJoin, TeamJoin: &wizard.TeamJoin{
			TeamCode:      "TEAM" + strconv.Itoa(1000+index),
			Personal:      generatePersonal(index),
			PrimarySkill:  pickOption(wizard.SkillOptions()),
			TermsAccepted: true,
		}}
		f.Registration = &reg
	default:
		sub := generateSubmission(index)
		f.Submission = &sub
	}
	return f
}

func generatePersonal(index int) wizard.Personal {
	first, last := pick(firstNames), pick(lastNames)
	return wizard.Personal{
		FirstName:   first,
		LastName:    last,
		Email:       fmt.Sprintf("participant%d@example.com", index),
		Phone:       fmt.Sprintf("98%08d", index),
		Institution: pick(institutions),
	}
}

func generateSubmission(index int) submission.Submission {
	name := pick(projectWords) + pick(projectWords) + strconv.Itoa(index)
	sub := submission.Submission{
		TeamCode: "TEAM" + strconv.Itoa(1000+index),
		Project: submission.Project{
			Name:         name,
			Description:  "Generated project " + strconv.Itoa(index),
			Category:     pick(submission.CategoryOptions())[0],
			Technologies: "Go, HTMX",
		},
	}
	switch index % shapeCount {
	case shapeRepository:
		sub.Type = submission.TypeRepository
		sub.Repository = &submission.Repository{URL: "https://github.com/teams/" + name, Branch: "main"}
	case shapeAssets:
		sub.Type = submission.TypeAssets
		sub.Assets = &submission.Assets{
			ProjectFiles: name + ".zip",
			Slides:       name + ".pdf",
			Screenshots:  []string{"home.png", "detail.jpg"},
		}
	default:
		sub.Type = submission.TypeDemo
		sub.Demo = &submission.Demo{DemoURL: "https://" + name + ".example.com"}
	}
	return sub
}

// duplicatesOf returns the forms to post a second time, taken evenly from
// forms so that ratio of them repeat.
func duplicatesOf(forms []Form, ratio float64) []Form {
	if ratio <= 0 || len(forms) == 0 {
		return nil
	}
	n := min(int(float64(len(forms))*ratio), len(forms))
	if n == 0 {
		return nil
	}
	step := len(forms) / n
	out := make([]Form, 0, n)
	for i := 0; i < len(forms) && len(out) < n; i += step {
		out = append(out, forms[i])
	}
	return out
}
