package scoring

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dmartin/fitscore/internal/textutil"
	"github.com/dmartin/fitscore/internal/types"
)

var (
	paidMediaTitleRe = regexp.MustCompile(`(?i)\bpaid\s+(?:media|search|social|acquisition)\b|\bppc\b|\bperformance\s+marketing\s+manager\b`)
	paidMediaBodyRe  = regexp.MustCompile(`(?i)\bhands[\s-]on\s+paid\s+(?:media|search|social)\b|\bmanag(?:e|ing)\s+(?:ad|paid)\s+(?:campaigns|spend|budgets?)\s+(?:directly|hands[\s-]on)\b`)

	seedStageRe = regexp.MustCompile(`(?i)\bpre[\s-]seed\b|\bseed[\s-]stage\b|\bseed\s+round\b|\bseed\s+funding\b`)

	noSponsorshipRe = regexp.MustCompile(`(?i)\bno\s+(?:visa\s+)?sponsorship\b|\bunable\s+to\s+sponsor\b|\bcannot\s+(?:provide\s+)?sponsor(?:ship)?\b|\bwill\s+not\s+sponsor\b`)

	travelPercentRe = regexp.MustCompile(`(?i)\b(?:up\s+to\s+)?(\d{1,3})\s*%\s+travel\b|\btravel\s*(?:up\s+to\s+)?(\d{1,3})\s*%`)

	onsiteDaysRe = regexp.MustCompile(`(?i)\b(\d)\s+days?\s+(?:per\s+week\s+)?(?:in[\s-](?:the[\s-])?office|on[\s-]?site)\b`)

	onsiteOnlyRe = regexp.MustCompile(`(?i)\bon[\s-]?site\s+only\b|\bfully\s+on[\s-]?site\b|\bin[\s-]office\s+(?:position|role|only)\b|\b(?:no|not)\s+remote\b|\brelocation\s+required\b`)
)

// disqualifiers runs every hard filter against the job and returns the
// reasons found. Any non-empty result zeroes the fit score; all checks run
// so the caller can report every violation, not just the first.
func disqualifiers(job *types.Job, profile *types.Profile) []string {
	var out []string
	text := job.Description
	if paidMediaTitleRe.MatchString(job.Title) || paidMediaBodyRe.MatchString(text) {
		out = append(out, "hands-on paid media execution role")
	}
	if seedStageRe.MatchString(text) {
		out = append(out, "seed-stage company")
	}
	if reason, bad := compBelowFloor(job, profile); bad {
		out = append(out, reason)
	}
	if reason, bad := excludedEmployment(job, profile); bad {
		out = append(out, reason)
	}
	if profile.HardFilters.NeedsSponsorship && noSponsorshipRe.MatchString(text) {
		out = append(out, "posting excludes visa sponsorship")
	}
	if reason, bad := travelAboveLimit(text, profile); bad {
		out = append(out, reason)
	}
	if reason, bad := onsiteAboveLimit(text, profile); bad {
		out = append(out, reason)
	}
	if profile.LocationPref == "remote" && onsiteOnlyRe.MatchString(text) {
		out = append(out, "onsite-only position against a remote preference")
	}
	return out
}

// compBelowFloor disqualifies when the posting's known ceiling cannot reach
// the candidate's floor. Unknown compensation never disqualifies.
func compBelowFloor(job *types.Job, profile *types.Profile) (string, bool) {
	if profile.CompFloor <= 0 {
		return "", false
	}
	compMax := job.CompMax
	if compMax == 0 {
		if _, parsed, ok := ParseCompRange(job.Description); ok {
			compMax = parsed
		}
	}
	if compMax > 0 && compMax < profile.CompFloor {
		return fmt.Sprintf("compensation ceiling $%d below floor $%d", compMax, profile.CompFloor), true
	}
	return "", false
}

func excludedEmployment(job *types.Job, profile *types.Profile) (string, bool) {
	if job.EmploymentType == "" {
		return "", false
	}
	for _, excluded := range profile.HardFilters.ExcludedEmploymentTypes {
		if strings.EqualFold(job.EmploymentType, excluded) ||
			textutil.ContainsWord(job.EmploymentType, excluded) {
			return "excluded employment type: " + job.EmploymentType, true
		}
	}
	return "", false
}

func travelAboveLimit(text string, profile *types.Profile) (string, bool) {
	limit := profile.HardFilters.MaxTravelPercent
	if limit <= 0 {
		return "", false
	}
	m := travelPercentRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	digits := m[1]
	if digits == "" {
		digits = m[2]
	}
	pct, err := strconv.Atoi(digits)
	if err != nil || pct <= limit {
		return "", false
	}
	return fmt.Sprintf("%d%% travel exceeds %d%% limit", pct, limit), true
}

func onsiteAboveLimit(text string, profile *types.Profile) (string, bool) {
	limit := profile.HardFilters.MaxOnsiteDaysPerWeek
	if limit <= 0 {
		return "", false
	}
	m := onsiteDaysRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	days, err := strconv.Atoi(m[1])
	if err != nil || days <= limit {
		return "", false
	}
	return fmt.Sprintf("%d onsite days exceeds %d day limit", days, limit), true
}
