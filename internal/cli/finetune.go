package cli

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/harisaicharan3/openaictl/internal/finetune"
	"github.com/harisaicharan3/openaictl/internal/provider"
)

const (
	defaultTrainingFile  = "training_data.jsonl"
	defaultFineTuneModel = "gpt-3.5-turbo"
	defaultEpochs        = 3
	jobListLimit         = 10
	eventListLimit       = 5
)

func (a *app) finetuneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "finetune",
		Short: "Create and inspect fine-tuning jobs",
	}
	cmd.AddCommand(a.finetuneCreateCmd())
	cmd.AddCommand(a.finetuneStatusCmd())
	cmd.AddCommand(a.finetuneListCmd())
	return cmd
}

func (a *app) finetuneCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create [training_file]",
		Short: "Upload a JSONL training file and start a fine-tuning job",
		RunE: func(cmd *cobra.Command, args []string) error {
			trainingFile := defaultTrainingFile
			if len(args) > 0 {
				trainingFile = args[0]
			}
			return a.runFinetuneCreate(trainingFile)
		},
	}
}

func (a *app) runFinetuneCreate(trainingFile string) error {
	raw, err := readInputFile(trainingFile)
	if err != nil {
		return err
	}

	records, err := finetune.ValidateTrainingData(raw)
	if err != nil {
		return usageErrorf("invalid training data in '%s': %v", trainingFile, err)
	}
	fmt.Fprintf(a.stdout, "Validated %d training records\n", records)

	ctx, cancel := a.runContext()
	defer cancel()

	fmt.Fprintf(a.stdout, "\n[1/3] Uploading training file: %s\n", trainingFile)
	file, err := a.files.UploadFile(ctx, provider.UploadFileRequest{
		Filename: filepath.Base(trainingFile),
		Purpose:  "fine-tune",
		Contents: raw,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, "File uploaded successfully!")
	fmt.Fprintf(a.stdout, "  File ID: %s\n", file.ID)
	fmt.Fprintf(a.stdout, "  Filename: %s\n", file.Filename)
	fmt.Fprintf(a.stdout, "  Status: %s\n", file.Status)

	fmt.Fprintln(a.stdout, "\n[2/3] Waiting for file to be processed...")
	err = finetune.WaitForFileProcessed(ctx, a.files, file.ID, finetune.DefaultPollInterval, func(status string) {
		fmt.Fprintf(a.stdout, "  Current status: %s. Waiting...\n", status)
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, "File processed successfully!")

	fmt.Fprintln(a.stdout, "\n[3/3] Creating fine-tuning job...")
	epochs := defaultEpochs
	job, err := a.finetune.CreateJob(ctx, provider.CreateJobRequest{
		TrainingFileID: file.ID,
		Model:          defaultFineTuneModel,
		Epochs:         &epochs,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(a.stdout, "Fine-tuning job created successfully!")
	fmt.Fprintln(a.stdout, "\n"+strings.Repeat("=", 60))
	fmt.Fprintln(a.stdout, "Job Details:")
	fmt.Fprintln(a.stdout, strings.Repeat("=", 60))
	fmt.Fprintf(a.stdout, "Job ID: %s\n", job.ID)
	fmt.Fprintf(a.stdout, "Model: %s\n", job.Model)
	fmt.Fprintf(a.stdout, "Status: %s\n", job.Status)
	fmt.Fprintf(a.stdout, "Training file: %s\n", job.TrainingFileID)
	if job.Epochs > 0 {
		fmt.Fprintf(a.stdout, "Epochs: %d\n", job.Epochs)
	}
	fmt.Fprintln(a.stdout, "\nNext steps:")
	fmt.Fprintf(a.stdout, "  1. Check job status: openaictl finetune status %s\n", job.ID)
	fmt.Fprintln(a.stdout, "  2. Monitor at: https://platform.openai.com/finetune")
	fmt.Fprintln(a.stdout, "\nNote: fine-tuning can take minutes to hours depending on the")
	fmt.Fprintln(a.stdout, "size of your training data.")
	return nil
}

func (a *app) finetuneStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <job_id>",
		Short: "Show the status of a fine-tuning job",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return usageErrorf("usage: openaictl finetune status <job_id>")
			}
			return a.runFinetuneStatus(args[0])
		},
	}
}

func (a *app) runFinetuneStatus(jobID string) error {
	ctx, cancel := a.runContext()
	defer cancel()

	fmt.Fprintf(a.stdout, "Checking status for job: %s\n", jobID)
	fmt.Fprintln(a.stdout, strings.Repeat("=", 60))

	job, err := a.finetune.RetrieveJob(ctx, jobID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "Status: %s\n", job.Status)
	fmt.Fprintf(a.stdout, "Model: %s\n", job.Model)
	fmt.Fprintf(a.stdout, "Training file: %s\n", job.TrainingFileID)
	if job.Epochs > 0 {
		fmt.Fprintf(a.stdout, "Epochs: %d\n", job.Epochs)
	}
	if job.TrainedTokens > 0 {
		fmt.Fprintf(a.stdout, "Trained tokens: %d\n", job.TrainedTokens)
	}

	switch {
	case job.FineTunedModel != "":
		fmt.Fprintf(a.stdout, "\nFine-tuned model ready: %s\n", job.FineTunedModel)
		fmt.Fprintln(a.stdout, "\nUse it with:")
		fmt.Fprintf(a.stdout, "  openaictl chat-ft %s \"your message\"\n", job.FineTunedModel)
	case job.Status == "failed":
		fmt.Fprintln(a.stdout, "\nJob failed!")
		if job.Error != "" {
			fmt.Fprintf(a.stdout, "Error: %s\n", job.Error)
		}
	default:
		fmt.Fprintf(a.stdout, "\nJob is %s...\n", job.Status)
	}

	events, err := a.finetune.ListJobEvents(ctx, jobID, eventListLimit)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, "\n"+strings.Repeat("=", 60))
	fmt.Fprintln(a.stdout, "Recent Events:")
	fmt.Fprintln(a.stdout, strings.Repeat("=", 60))
	for _, e := range events {
		fmt.Fprintf(a.stdout, "[%s] %s\n", formatUnix(e.CreatedAt), e.Message)
	}
	return nil
}

func (a *app) finetuneListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recent fine-tuning jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFinetuneList()
		},
	}
}

func (a *app) runFinetuneList() error {
	ctx, cancel := a.runContext()
	defer cancel()

	jobs, err := a.finetune.ListJobs(ctx, jobListLimit)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.stdout, strings.Repeat("=", 60))
	fmt.Fprintln(a.stdout, "Fine-Tuning Jobs")
	fmt.Fprintln(a.stdout, strings.Repeat("=", 60))
	if len(jobs) == 0 {
		fmt.Fprintln(a.stdout, "No fine-tuning jobs found.")
		return nil
	}
	for _, job := range jobs {
		fmt.Fprintf(a.stdout, "\nJob ID: %s\n", job.ID)
		fmt.Fprintf(a.stdout, "Model: %s\n", job.Model)
		fmt.Fprintf(a.stdout, "Status: %s\n", job.Status)
		fmt.Fprintf(a.stdout, "Created: %s\n", formatUnix(job.CreatedAt))
		if job.FinishedAt > 0 {
			fmt.Fprintf(a.stdout, "Finished: %s\n", formatUnix(job.FinishedAt))
		}
		if job.FineTunedModel != "" {
			fmt.Fprintf(a.stdout, "Fine-tuned Model: %s\n", job.FineTunedModel)
		}
		fmt.Fprintln(a.stdout, strings.Repeat("-", 60))
	}
	return nil
}

func formatUnix(ts int64) string {
	if ts == 0 {
		return "-"
	}
	return time.Unix(ts, 0).UTC().Format(time.RFC3339)
}
