package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"wingorder/internal"
	"wingorder/internal/catalog"
	"wingorder/internal/config"
	"wingorder/internal/intake"
	"wingorder/internal/matcher"
	"wingorder/internal/oracle"
	"wingorder/internal/pipeline"
	"wingorder/internal/storage"
	"wingorder/internal/util"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	logger, err := zap.NewProduction()
	must(err)
	defer logger.Sync()

	db, err := storage.Open(cfg.DBPath)
	must(err)
	defer db.Close()

	pricing, err := db.LoadCatalog(catalog.DefaultPricing())
	must(err)

	cmd := os.Args[1]
	switch cmd {
	case "orders:process":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		file := fs.String("file", "", "master order xlsx")
		company := fs.String("company", "", "vendor name")
		fakeFile := fs.String("fake-file", "", "text file with excluded order numbers")
		manualFile := fs.String("manual-file", "", "json file with manual orders")
		out := fs.String("out", cfg.OutputDir, "output directory")
		_ = fs.Parse(os.Args[2:])
		if *file == "" || *company == "" {
			must(fmt.Errorf("--file and --company are required"))
		}

		rows, err := pipeline.ReadSheetRows(*file)
		must(err)
		rows = pipeline.FilterGroupRows(rows, *company)

		exclusionText := ""
		if *fakeFile != "" {
			data, err := os.ReadFile(*fakeFile)
			must(err)
			exclusionText = string(data)
		}
		var manual []internal.ManualOrder
		if *manualFile != "" {
			data, err := os.ReadFile(*manualFile)
			must(err)
			must(json.Unmarshal(data, &manual))
		}

		ora := oracle.NewClient(cfg, logger)
		classifier := pipeline.NewClassifier(matcher.New(ora, logger), logger)
		result, err := classifier.Classify(context.Background(), pricing, rows, *company, exclusionText, manual)
		must(err)

		outPath := filepath.Join(*out, result.FileName)
		must(pipeline.ExportOrderForm(result, outPath))

		session := internal.Session{
			ID:           fmt.Sprintf("%s_%s", util.Today(), result.CompanyName),
			CompanyName:  result.CompanyName,
			Round:        1,
			Summary:      result.DepositSummary,
			SummaryExcel: result.DepositSummaryExcel,
			Total:        result.Total,
			Header:       result.Header,
			OrderRows:    result.Rows,
		}
		must(db.SaveWorkspaceField(util.Today(), "session:"+result.CompanyName, session))

		fmt.Println(result.DepositSummary)
		if len(result.ExclusionMissing) > 0 {
			fmt.Printf("exclusions not found in sheet: %s\n", strings.Join(result.ExclusionMissing, ", "))
		}
		fmt.Printf("orders processed company=%s rows=%d excluded=%d exclusionsMatched=%d exclusionsMissing=%d unmatched=%d total=%s output=%s\n",
			result.CompanyName, len(result.Rows), len(result.Excluded),
			len(result.ExclusionMatched), len(result.ExclusionMissing), result.Unmatched,
			util.FormatComma(result.Total), outPath)
	case "orders:detect":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		file := fs.String("file", "", "master order xlsx")
		_ = fs.Parse(os.Args[2:])
		if *file == "" {
			must(fmt.Errorf("--file is required"))
		}
		rows, err := pipeline.ReadSheetRows(*file)
		must(err)
		counts := pipeline.DetectCompanies(pricing, rows)
		if len(counts) == 0 {
			fmt.Println("no known vendors detected")
			return
		}
		for _, name := range catalog.SortedCompanies(pricing) {
			if n, ok := counts[name]; ok {
				fmt.Printf("%s\t%d\n", name, n)
			}
		}
	case "invoice:merge":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		orders := fs.String("orders", "", "order form xlsx")
		invoices := fs.String("invoices", "", "vendor invoice xlsx")
		company := fs.String("company", "", "vendor name")
		groupCheck := fs.Bool("group-check", true, "require product keyword match per row")
		outDir := fs.String("out-dir", cfg.OutputDir, "output directory")
		_ = fs.Parse(os.Args[2:])
		if *orders == "" || *invoices == "" || *company == "" {
			must(fmt.Errorf("--orders --invoices --company are required"))
		}

		orderRows, err := pipeline.ReadSheetRows(*orders)
		must(err)
		vendorRows, err := pipeline.ReadSheetRows(*invoices)
		must(err)

		result, err := pipeline.Merge(logger, vendorRows, orderRows, *company, !*groupCheck)
		must(err)
		mgmtPath, uploadPath, err := pipeline.ExportMergeResult(result, *outDir)
		must(err)

		for _, f := range result.Stats.Failures {
			fmt.Printf("unmatched order=%s recipient=%s reason=%s\n", f.OrderNumber, f.Recipient, f.Reason)
		}
		fmt.Printf("merge done company=%s mgmt=%d upload=%d failures=%d\n",
			*company, result.Stats.Mgmt, result.Stats.Upload, len(result.Stats.Failures))
		fmt.Printf("mgmt=%s upload=%s\n", mgmtPath, uploadPath)
	case "settle:deposit-list":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		sessionsFile := fs.String("sessions", "", "json file with sessions")
		transfersFile := fs.String("transfers", "", "json file with manual transfers")
		bulkFile := fs.String("bulk", "", "text file with pasted transfer lines")
		out := fs.String("out", "", "output xlsx path")
		_ = fs.Parse(os.Args[2:])
		sessions, transfers, err := loadSettleInputs(*sessionsFile, *transfersFile)
		must(err)
		if *bulkFile != "" {
			data, err := os.ReadFile(*bulkFile)
			must(err)
			transfers = append(transfers, pipeline.ParseBulkTransfers(string(data))...)
		}

		rows, total := pipeline.DepositList(pricing, sessions, transfers)
		for _, row := range rows {
			fmt.Println(strings.Join(row, "\t"))
		}
		fmt.Printf("deposit total=%s원\n", util.FormatComma(total))
		if *out != "" {
			must(pipeline.ExportDepositList(rows, *out))
			fmt.Printf("saved %s\n", *out)
		}
	case "settle:work-log":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		sessionsFile := fs.String("sessions", "", "json file with sessions")
		transfersFile := fs.String("transfers", "", "json file with manual transfers")
		out := fs.String("out", cfg.OutputDir, "output directory")
		_ = fs.Parse(os.Args[2:])
		sessions, transfers, err := loadSettleInputs(*sessionsFile, *transfersFile)
		must(err)

		workLog := pipeline.BuildWorkLog(pricing, sessions, transfers)
		outPath := filepath.Join(*out, workLog.FileName)
		must(pipeline.ExportWorkLog(workLog, outPath))
		fmt.Printf("work log saved sessions=%d deposit=%s원 output=%s\n",
			len(sessions), util.FormatComma(workLog.DepositTotal), outPath)
	case "settle:merged-upload":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		sessionsFile := fs.String("sessions", "", "json file with sessions")
		out := fs.String("out", cfg.OutputDir, "output directory")
		_ = fs.Parse(os.Args[2:])
		sessions, _, err := loadSettleInputs(*sessionsFile, "")
		must(err)

		header, rows, companies := pipeline.MergedUploadRows(sessions)
		if len(rows) == 0 {
			must(fmt.Errorf("no upload rows in sessions"))
		}
		outPath := filepath.Join(*out, pipeline.MergedUploadFileName(companies))
		must(pipeline.ExportMergedUpload(header, rows, outPath))
		fmt.Printf("merged upload saved companies=%d rows=%d output=%s\n", len(companies), len(rows), outPath)
	case "sales:save":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		sessionsFile := fs.String("sessions", "", "json file with sessions")
		date := fs.String("date", util.Today(), "sales date YYYY-MM-DD")
		_ = fs.Parse(os.Args[2:])
		sessions, _, err := loadSettleInputs(*sessionsFile, "")
		must(err)

		records := pipeline.SalesFromSessions(*date, pricing, sessions)
		if len(records) == 0 {
			must(fmt.Errorf("no sales records in sessions"))
		}
		var total int64
		for _, r := range records {
			total += r.TotalPrice
		}
		must(db.UpsertDailySales(internal.DailySales{
			Date:        *date,
			Records:     records,
			TotalAmount: total,
			SavedAt:     util.NowRFC3339(),
		}))
		fmt.Printf("sales saved date=%s records=%d total=%s원\n", *date, len(records), util.FormatComma(total))
	case "sales:list":
		list, err := db.ListDailySales()
		must(err)
		for _, s := range list {
			fmt.Printf("%s\trecords=%d\ttotal=%s원\n", s.Date, len(s.Records), util.FormatComma(s.TotalAmount))
		}
	case "sales:import-worklog":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		file := fs.String("file", "", "work log xlsx")
		_ = fs.Parse(os.Args[2:])
		if *file == "" {
			must(fmt.Errorf("--file is required"))
		}
		sheets, err := pipeline.ReadAllSheets(*file)
		must(err)
		sales, imported := pipeline.ImportWorkLog(filepath.Base(*file), sheets)
		if imported == 0 {
			must(fmt.Errorf("no recognizable sheets in %s", *file))
		}
		must(db.UpsertDailySales(sales))
		fmt.Printf("work log imported date=%s sheets=%d records=%d\n", sales.Date, imported, len(sales.Records))
	case "catalog:show":
		for _, name := range catalog.SortedCompanies(pricing) {
			company := pricing[name]
			fmt.Printf("%s (deadline=%s, products=%d)\n", name, company.Deadline, len(company.Products))
			for key, p := range company.Products {
				display := p.DisplayName
				if display == "" {
					display = key
				}
				fmt.Printf("  %s\t공급가 %s원\n", display, util.FormatComma(p.SupplyPrice))
			}
		}
	case "catalog:export":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		out := fs.String("out", "", "output json path")
		_ = fs.Parse(os.Args[2:])
		data, err := catalog.ExportJSON(pricing)
		must(err)
		if *out == "" {
			fmt.Println(string(data))
			return
		}
		must(os.WriteFile(*out, data, 0o644))
		fmt.Printf("catalog exported to %s\n", *out)
	case "catalog:import":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		file := fs.String("file", "", "catalog json path")
		_ = fs.Parse(os.Args[2:])
		if *file == "" {
			must(fmt.Errorf("--file is required"))
		}
		data, err := os.ReadFile(*file)
		must(err)
		imported, err := catalog.ImportJSON(data)
		must(err)
		must(db.SaveCatalog(imported))
		fmt.Printf("catalog imported companies=%d\n", len(imported))
	case "mail:fetch":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		mailbox := fs.String("mailbox", cfg.IMAPMailbox, "imap mailbox")
		max := fs.Int("max", cfg.IMAPFetchMax, "max messages")
		_ = fs.Parse(os.Args[2:])
		conn, err := intake.NewConnector(cfg)
		must(err)
		fetch := intake.NewFetchService(db, conn, cfg.DataDir, logger)
		result, err := fetch.FetchAndStore(*mailbox, *max)
		must(err)
		fmt.Printf("mail fetch done fetched=%d stored=%d\n", result.Fetched, result.Stored)
	case "mail:list":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		status := fs.String("status", "", "filter by status")
		limit := fs.Int("limit", 50, "max rows")
		_ = fs.Parse(os.Args[2:])
		files, err := db.ListInboxFiles(*status, *limit)
		must(err)
		for _, f := range files {
			fmt.Printf("%d\t%s\t%s\t%s\t%s\n", f.ID, f.Status, f.ReceivedAt, f.Sender, f.FileName)
		}
	default:
		usage()
		os.Exit(1)
	}
}

func loadSettleInputs(sessionsFile, transfersFile string) ([]internal.Session, []internal.ManualTransfer, error) {
	if strings.TrimSpace(sessionsFile) == "" {
		return nil, nil, fmt.Errorf("--sessions is required")
	}
	data, err := os.ReadFile(sessionsFile)
	if err != nil {
		return nil, nil, err
	}
	var sessions []internal.Session
	if err := json.Unmarshal(data, &sessions); err != nil {
		return nil, nil, fmt.Errorf("parse sessions: %w", err)
	}

	var transfers []internal.ManualTransfer
	if strings.TrimSpace(transfersFile) != "" {
		data, err := os.ReadFile(transfersFile)
		if err != nil {
			return nil, nil, err
		}
		if err := json.Unmarshal(data, &transfers); err != nil {
			return nil, nil, fmt.Errorf("parse transfers: %w", err)
		}
	}
	return sessions, transfers, nil
}

func usage() {
	fmt.Println("usage: wingorder <command>")
	fmt.Println("commands:")
	fmt.Println("  orders:process --file=master.xlsx --company=연두 [--fake-file=...] [--manual-file=...] [--out=./out]")
	fmt.Println("  orders:detect --file=master.xlsx")
	fmt.Println("  invoice:merge --orders=order.xlsx --invoices=vendor.xlsx --company=연두 [--group-check=false] [--out-dir=./out]")
	fmt.Println("  settle:deposit-list --sessions=sessions.json [--transfers=transfers.json] [--bulk=paste.txt] [--out=deposit.xlsx]")
	fmt.Println("  settle:work-log --sessions=sessions.json [--transfers=transfers.json] [--out=./out]")
	fmt.Println("  settle:merged-upload --sessions=sessions.json [--out=./out]")
	fmt.Println("  sales:save --sessions=sessions.json [--date=2026-08-30]")
	fmt.Println("  sales:list")
	fmt.Println("  sales:import-worklog --file=2026-08-30_업무일지.xlsx")
	fmt.Println("  catalog:show")
	fmt.Println("  catalog:export [--out=catalog.json]")
	fmt.Println("  catalog:import --file=catalog.json")
	fmt.Println("  mail:fetch [--mailbox=INBOX] [--max=20]")
	fmt.Println("  mail:list [--status=fetched] [--limit=50]")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
