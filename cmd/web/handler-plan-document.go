package main

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/marcosoliveira78/v0-personal-workout-generator/internal/i18n"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

// markdownRenderer converts exercise descriptions to HTML. Raw HTML in the
// markdown source stays escaped, so catalog text cannot inject markup.
var markdownRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

func renderMarkdown(source string) template.HTML {
	var buf bytes.Buffer
	if err := markdownRenderer.Convert([]byte(source), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(source)) //nolint:gosec // escaped above
	}
	return template.HTML(buf.String()) //nolint:gosec // goldmark escapes raw HTML
}

var weekdayNames = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

func weekdayName(day int) string {
	if day < 0 || day >= len(weekdayNames) {
		return fmt.Sprintf("Day %d", day+1)
	}
	return weekdayNames[day]
}

var planDocumentTemplate = template.Must(template.New("plan-document").Funcs(template.FuncMap{
	"markdown": renderMarkdown,
	"weekday":  weekdayName,
	"join":     func(items []string) string { return strings.Join(items, ", ") },
}).Parse(planDocumentHTML))

type planDocumentData struct {
	Plan       planDocumentPlan
	WeekNumber int
}

// planDocumentPlan mirrors the plan model for template rendering. Declared
// locally so the template stays decoupled from JSON field naming.
type planDocumentPlan struct {
	Name                 string
	Description          string
	FitnessLevel         string
	FocusArea            string
	DaysPerWeek          int
	TotalWeeks           int
	Notes                string
	Week                 planDocumentWeek
	Supplements          []planDocumentSupplement
	SleepRecommendations []string
	Metrics              planDocumentMetrics
}

type planDocumentWeek struct {
	Number            int
	Focus             string
	Description       string
	Deload            bool
	Workouts          []planDocumentWorkout
	RestDayActivities []planDocumentRestActivity
}

type planDocumentWorkout struct {
	DayOfWeek         int
	Name              string
	Description       string
	EstimatedDuration int
	Intensity         string
	Warmup            []string
	Exercises         []planDocumentExercise
	Cooldown          []string
	Notes             string
}

type planDocumentExercise struct {
	Name            string
	Description     string
	Sets            int
	Reps            string
	RestBetweenSets int
	TargetMuscles   []string
	Equipment       string
	Tempo           string
	Tips            []string
}

type planDocumentRestActivity struct {
	Name        string
	Description string
	Duration    int
	Intensity   string
	Notes       string
}

type planDocumentSupplement struct {
	Name     string
	Dosage   string
	Timing   string
	Priority string
}

type planDocumentMetrics struct {
	BMI               float64
	BMICategory       string
	BMR               int
	DailyCalorieNeeds int
	BodyFatEstimate   float64
	WaistToHipRatio   string
}

// planDocumentGET renders a printable single-week view of the session plan.
func (app *application) planDocumentGET(w http.ResponseWriter, r *http.Request) {
	p, ok, err := app.sessionPlan(r)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	if !ok {
		http.Error(w, "no plan generated yet", http.StatusNotFound)
		return
	}

	weekNumber := p.CurrentWeek
	if weekNumber < 1 {
		weekNumber = 1
	}
	if raw := r.URL.Query().Get("week"); raw != "" {
		parsed, parseErr := strconv.Atoi(raw)
		if parseErr != nil || parsed < 1 || parsed > len(p.Weeks) {
			http.Error(w, "week must be a number between 1 and "+strconv.Itoa(len(p.Weeks)), http.StatusBadRequest)
			return
		}
		weekNumber = parsed
	}
	if weekNumber > len(p.Weeks) {
		weekNumber = len(p.Weeks)
	}
	week := p.Weeks[weekNumber-1]

	data := planDocumentData{
		WeekNumber: weekNumber,
		Plan: planDocumentPlan{
			Name:         p.Name,
			Description:  p.Description,
			FitnessLevel: string(p.FitnessLevel),
			FocusArea:    p.FocusArea,
			DaysPerWeek:  p.DaysPerWeek,
			TotalWeeks:   p.TotalWeeks,
			Notes:        p.Notes,
			Week: planDocumentWeek{
				Number:      week.Number,
				Focus:       week.Focus,
				Description: week.Description,
				Deload:      week.Deload,
			},
			SleepRecommendations: p.SleepRecommendations,
			Metrics: planDocumentMetrics{
				BMI:               p.BodyMetrics.BMI,
				BMICategory:       p.BodyMetrics.BMICategory,
				BMR:               p.BodyMetrics.BasalMetabolicRate,
				DailyCalorieNeeds: p.BodyMetrics.DailyCalorieNeeds,
				BodyFatEstimate:   p.BodyMetrics.BodyFatEstimate,
			},
		},
	}
	if ratio := p.BodyMetrics.WaistToHipRatio; ratio != nil {
		data.Plan.Metrics.WaistToHipRatio = strconv.FormatFloat(*ratio, 'f', 2, 64)
	}
	for _, workout := range week.Workouts {
		doc := planDocumentWorkout{
			DayOfWeek:         workout.DayOfWeek,
			Name:              workout.Name,
			Description:       workout.Description,
			EstimatedDuration: workout.EstimatedDuration,
			Intensity:         i18n.Label("intensity." + string(workout.Intensity)),
			Warmup:            workout.Warmup,
			Cooldown:          workout.Cooldown,
			Notes:             workout.Notes,
		}
		for _, exercise := range workout.Exercises {
			doc.Exercises = append(doc.Exercises, planDocumentExercise{
				Name:            exercise.Name,
				Description:     exercise.DescriptionMarkdown,
				Sets:            exercise.Sets,
				Reps:            exercise.Reps.String(),
				RestBetweenSets: exercise.RestBetweenSets,
				TargetMuscles:   exercise.TargetMuscles,
				Equipment:       exercise.Equipment,
				Tempo:           exercise.Tempo,
				Tips:            exercise.Tips,
			})
		}
		data.Plan.Week.Workouts = append(data.Plan.Week.Workouts, doc)
	}
	for _, activity := range week.RestDayActivities {
		data.Plan.Week.RestDayActivities = append(data.Plan.Week.RestDayActivities, planDocumentRestActivity{
			Name:        activity.Name,
			Description: activity.Description,
			Duration:    activity.Duration,
			Intensity:   string(activity.Intensity),
			Notes:       activity.Notes,
		})
	}
	for _, supplement := range p.Supplements {
		data.Plan.Supplements = append(data.Plan.Supplements, planDocumentSupplement{
			Name:     supplement.Name,
			Dosage:   supplement.Dosage,
			Timing:   supplement.Timing,
			Priority: i18n.Label("priority." + string(supplement.Priority)),
		})
	}

	var buf bytes.Buffer
	if err = planDocumentTemplate.Execute(&buf, data); err != nil {
		app.serverError(w, r, fmt.Errorf("execute plan document template: %w", err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

const planDocumentHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{ .Plan.Name }} - Week {{ .WeekNumber }}</title>
<style>
body { font-family: Georgia, serif; max-width: 50rem; margin: 2rem auto; padding: 0 1rem; color: #1a1a1a; }
h1 { font-size: 1.6rem; border-bottom: 2px solid #1a1a1a; padding-bottom: 0.3rem; }
h2 { font-size: 1.2rem; margin-top: 2rem; }
h3 { font-size: 1rem; }
table { border-collapse: collapse; width: 100%; margin: 0.5rem 0; }
th, td { border: 1px solid #999; padding: 0.3rem 0.5rem; text-align: left; font-size: 0.9rem; }
.meta { color: #555; font-size: 0.9rem; }
.exercise { margin: 1rem 0; padding-left: 0.8rem; border-left: 3px solid #ccc; }
.deload { background: #fff6d8; padding: 0.4rem 0.6rem; }
@media print { body { margin: 0; } }
</style>
</head>
<body>
<h1>{{ .Plan.Name }}</h1>
<p class="meta">{{ .Plan.Description }}</p>
<p class="meta">Level: {{ .Plan.FitnessLevel }} | Focus: {{ .Plan.FocusArea }} | {{ .Plan.DaysPerWeek }} sessions per week | {{ .Plan.TotalWeeks }} weeks</p>

<h2>Week {{ .Plan.Week.Number }}: {{ .Plan.Week.Focus }}</h2>
<p>{{ .Plan.Week.Description }}</p>
{{ if .Plan.Week.Deload }}<p class="deload">Deload week: reduced volume and intensity to support recovery.</p>{{ end }}

{{ range .Plan.Week.Workouts }}
<h3>{{ weekday .DayOfWeek }} - {{ .Name }}</h3>
<p class="meta">{{ .Description }} ({{ .EstimatedDuration }} min, intensity: {{ .Intensity }})</p>
{{ if .Warmup }}<p><strong>Warm-up:</strong> {{ join .Warmup }}</p>{{ end }}
{{ range .Exercises }}
<div class="exercise">
<strong>{{ .Name }}</strong> - {{ .Sets }} x {{ .Reps }}{{ if .RestBetweenSets }}, rest {{ .RestBetweenSets }}s{{ end }}
{{ markdown .Description }}
<p class="meta">Muscles: {{ join .TargetMuscles }}{{ if .Equipment }} | Equipment: {{ .Equipment }}{{ end }}{{ if .Tempo }} | Tempo: {{ .Tempo }}{{ end }}</p>
{{ if .Tips }}<ul>{{ range .Tips }}<li>{{ . }}</li>{{ end }}</ul>{{ end }}
</div>
{{ end }}
{{ if .Cooldown }}<p><strong>Cool-down:</strong> {{ join .Cooldown }}</p>{{ end }}
{{ if .Notes }}<p class="meta">{{ .Notes }}</p>{{ end }}
{{ end }}

{{ if .Plan.Week.RestDayActivities }}
<h2>Rest days</h2>
<table>
<tr><th>Activity</th><th>Duration</th><th>Intensity</th><th>Notes</th></tr>
{{ range .Plan.Week.RestDayActivities }}
<tr><td>{{ .Name }}</td><td>{{ .Duration }} min</td><td>{{ .Intensity }}</td><td>{{ .Notes }}</td></tr>
{{ end }}
</table>
{{ end }}

{{ if .Plan.Supplements }}
<h2>Supplements</h2>
<table>
<tr><th>Supplement</th><th>Dosage</th><th>Timing</th><th>Priority</th></tr>
{{ range .Plan.Supplements }}
<tr><td>{{ .Name }}</td><td>{{ .Dosage }}</td><td>{{ .Timing }}</td><td>{{ .Priority }}</td></tr>
{{ end }}
</table>
{{ end }}

{{ if .Plan.SleepRecommendations }}
<h2>Sleep</h2>
<ul>
{{ range .Plan.SleepRecommendations }}<li>{{ . }}</li>{{ end }}
</ul>
{{ end }}

<h2>Body metrics</h2>
<table>
<tr><th>BMI</th><td>{{ printf "%.2f" .Plan.Metrics.BMI }} ({{ .Plan.Metrics.BMICategory }})</td></tr>
<tr><th>Basal metabolic rate</th><td>{{ .Plan.Metrics.BMR }} kcal</td></tr>
<tr><th>Daily calorie needs</th><td>{{ .Plan.Metrics.DailyCalorieNeeds }} kcal</td></tr>
<tr><th>Estimated body fat</th><td>{{ printf "%.1f" .Plan.Metrics.BodyFatEstimate }}%</td></tr>
{{ if .Plan.Metrics.WaistToHipRatio }}<tr><th>Waist-to-hip ratio</th><td>{{ .Plan.Metrics.WaistToHipRatio }}</td></tr>{{ end }}
</table>

{{ if .Plan.Notes }}<p class="meta">{{ .Plan.Notes }}</p>{{ end }}
</body>
</html>
`
