// cmd/tools/sheet-bootstrap/main.go
// One-time operator tool: write the header row into a form's sheet and verify
// the connection, without starting the server.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/common/config"
	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/common/sheets"
	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/forms/jobapplication"
	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/forms/projector"
	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/forms/talentregistration"
)

func main() {
	formName := flag.String("form", "", "Form to bootstrap (job-application or talent-registration)")
	checkOnly := flag.Bool("check", false, "Only verify the sheet is reachable, do not write headers")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: config load failed: %v\n", err)
		os.Exit(1)
	}

	var form config.FormConfig
	var columns []projector.Column
	switch *formName {
	case jobapplication.FormName:
		form = cfg.Forms.JobApplication
		columns = jobapplication.Columns
	case talentregistration.FormName:
		form = cfg.Forms.TalentRegistration
		columns = talentregistration.Columns
	default:
		fmt.Fprintf(os.Stderr, "Error: -form must be %q or %q\n",
			jobapplication.FormName, talentregistration.FormName)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := sheets.NewClient(ctx, cfg.Sheets, form.SpreadsheetID, form.SheetName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: sheet client failed: %v\n", err)
		os.Exit(1)
	}

	if err := client.Ping(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: spreadsheet unreachable: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Spreadsheet %s reachable.\n", form.SpreadsheetID)

	if *checkOnly {
		return
	}

	headers := projector.RowSpec{Columns: columns}.Headers()
	if err := client.EnsureHeaders(ctx, headers); err != nil {
		fmt.Fprintf(os.Stderr, "Error: header bootstrap failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Headers ensured for %s (%d columns).\n", *formName, len(headers))
}
