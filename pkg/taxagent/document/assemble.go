package document

import (
	"log/slog"
	"time"

	"github.com/ukaji3/taxagent-go/pkg/taxagent/aggregate"
	"github.com/ukaji3/taxagent-go/pkg/taxagent/models"
)

// CreatedLayout formats pckagentinfo.dcreate: local time, no offset.
const CreatedLayout = "2006-01-02T15:04:05"

// Assemble builds the document for one batch of persons created at now.
func Assemble(persons []models.Person, now time.Time, filer models.Filer, logger *slog.Logger) models.Document {
	if logger == nil {
		logger = slog.Default()
	}

	agents := make([]models.DocAgent, 0, len(persons))
	for _, p := range persons {
		agents = append(agents, Agent(p, filer, logger))
	}
	return models.Document{
		Package: models.Package{
			Agents: agents,
			Info:   PackageInfo(now, filer),
		},
	}
}

// PackageInfo builds the filer metadata block.
func PackageInfo(now time.Time, filer models.Filer) models.PackageInfo {
	return models.PackageInfo{
		Created:             now.Format(CreatedLayout),
		Year:                now.Year(),
		InspectionCode:      filer.InspectionCode,
		InspectionCodeFiler: filer.InspectionCodeFiler,
		Type:                filer.DocumentType,
		Executor:            filer.Executor,
		Phone:               filer.Phone,
		UNP:                 filer.UNP,
	}
}

// Agent builds one person's docagent record. A malformed name is logged
// and written with its missing parts empty.
func Agent(p models.Person, filer models.Filer, logger *slog.Logger) models.DocAgent {
	name, ok := SplitName(p.FullName)
	if !ok {
		logger.Warn("full name does not have three parts",
			slog.Int("row", p.Row),
			slog.String("number", p.Number),
			slog.String("full_name", p.FullName),
		)
	}

	totals := aggregate.Summarize(p.Months)
	return models.DocAgent{
		Info: models.DocAgentInfo{
			PersonalNumber:  p.PersonalNumber,
			CountryCode:     filer.CountryCode,
			IdentityDocCode: filer.IdentityDocCode,
			Rate:            filer.TaxRate,
			Surname:         name.Surname,
			GivenName:       name.GivenName,
			Patronymic:      name.Patronymic,
		},
		SumStandard:   aggregate.Amount(totals.StandardBase),
		SumCalcIncome: aggregate.Amount(totals.TaxWithheld),
		SumIncome:     aggregate.Amount(totals.Income),
		Tar14:         aggregate.Tar14(p.Months),
		Tar4:          aggregate.Tar4(p.Months),
		Tar7:          aggregate.Tar7(p.Months),
	}
}
