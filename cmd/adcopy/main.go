package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/adcopy-studio/backend/internal/config"
	"github.com/adcopy-studio/backend/internal/llm"
	"github.com/adcopy-studio/backend/internal/models"
	"github.com/adcopy-studio/backend/internal/render"
	"github.com/adcopy-studio/backend/internal/sentiment"
	"github.com/adcopy-studio/backend/internal/services"
)

var (
	brand    string
	product  string
	audience string
	toneFlag string
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "adcopy",
	Short: "AI Marketing Copy Generator",
	Long: `adcopy collects a brand, product description and target audience,
optionally detects a tone of voice from the input text, and generates
a headline, description, hashtags and call-to-action via OpenAI.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&brand, "brand", "", "brand name")
	rootCmd.Flags().StringVar(&product, "product", "", "product or service description")
	rootCmd.Flags().StringVar(&audience, "audience", "", "target audience description")
	rootCmd.Flags().StringVar(&toneFlag, "tone", "", "tone of voice: Exciting, Professional or Casual (default: auto-detect)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	_ = rootCmd.MarkFlagRequired("brand")
	_ = rootCmd.MarkFlagRequired("product")
	_ = rootCmd.MarkFlagRequired("audience")
}

func run(cmd *cobra.Command, args []string) error {
	log := zap.NewNop()
	if verbose {
		var err error
		log, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer log.Sync()
	}

	cfg := config.Load()
	cfg.Validate(log)

	brief := models.CampaignBrief{
		BrandName:          brand,
		ProductDescription: product,
		TargetAudience:     audience,
	}
	if err := brief.Validate(); err != nil {
		return err
	}
	if toneFlag != "" {
		tone, err := models.ParseTone(toneFlag)
		if err != nil {
			return err
		}
		brief.Tone = &tone
	}

	classifier := sentiment.NewClassifier()
	generator := llm.NewGenerator(cfg, log)
	copyService := services.NewCopyService(classifier, generator, log)

	fmt.Println("\nAnalyzing inputs...")
	tone, detected := copyService.ResolveTone(brief)
	if detected {
		fmt.Printf("Detected tone: %s\n", tone)
	}
	brief.Tone = &tone

	fmt.Println("\nGenerating marketing copy...")
	result, err := copyService.Generate(cmd.Context(), brief)

	var ad models.AdCopy
	if err != nil {
		ad = models.DegradedCopy(err)
	} else {
		ad = result.Copy
	}

	fmt.Println(render.Block(ad))

	if err != nil {
		// Nothing worth saving on the degraded path.
		return nil
	}

	fmt.Print("\nSave this copy to a file? (y/n): ")
	reader := bufio.NewReader(os.Stdin)
	answer, _ := reader.ReadString('\n')
	if strings.ToLower(strings.TrimSpace(answer)) == "y" {
		filename := render.FileName(brief.BrandName)
		if err := os.WriteFile(filename, []byte(render.Text(ad)), 0644); err != nil {
			return fmt.Errorf("failed to save file: %w", err)
		}
		fmt.Printf("\nSaved to %s\n", filename)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
