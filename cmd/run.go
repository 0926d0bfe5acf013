package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charnpreetsingh/just-in-time-recruiter/internal/chat"
	"github.com/charnpreetsingh/just-in-time-recruiter/internal/company"
	"github.com/charnpreetsingh/just-in-time-recruiter/internal/filtering"
	"github.com/charnpreetsingh/just-in-time-recruiter/internal/logger"
	"github.com/charnpreetsingh/just-in-time-recruiter/internal/matching"
	"github.com/charnpreetsingh/just-in-time-recruiter/internal/secrets"
	"github.com/charnpreetsingh/just-in-time-recruiter/internal/talent"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptAsk             = "Ask the assistant"
	PromptShowTalent      = "Show the talent tab"
	PromptShowRoles       = "Show the open roles tab"
	PromptShowCompanies   = "Show the company watch tab"
	PromptInspectRole     = "Inspect a role"
	PromptInspectTalent   = "Inspect a talent record"
	PromptReportByCompany = "Report by company"
	PromptPoolToFile      = "Dump talent pool to file"
	PromptResetFilters    = "Reset filters"
	PromptBack            = "back"
	PromptExit            = "Exit"

	defaultResponseDelay = 800 * time.Millisecond
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{
		PromptAsk, PromptShowTalent, PromptShowRoles, PromptShowCompanies,
		PromptInspectRole, PromptInspectTalent,
		PromptReportByCompany, PromptPoolToFile, PromptResetFilters, PromptExit,
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the just-in-time-recruiter main command",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("question", "q", "", "ask a single question, print the resulting view and exit")
	runCmd.Flags().StringP("companies-file", "c", "", "yaml file with tracked company profiles. Default is unset.")

	viper.BindPFlag("companies-file", runCmd.Flags().Lookup("companies-file"))
}

// session bundles everything the action loop operates on.
type session struct {
	logger   *zap.Logger
	pool     *talent.Pool
	roles    *talent.Roles
	entries  []*matching.TalentWithMatch
	profiles company.Table
	state    *filtering.State
	pipeline *filtering.Pipeline
	chat     *chat.Session
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the just-in-time-recruiter", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	if config == nil {
		logger.Fatal("config is required")
	}

	token, err := resolveToken(config)
	if err != nil {
		logger.Fatal(
			"loading talent store token",
			zap.Error(err),
			zap.String("hint", "set JIT_RECRUITER_TOKEN_FILE environment variable or the 'store.token-file' key in the configuration file"),
		)
	}

	store := talent.New(ctx, logger, token)

	if config.Store != nil {
		if config.Store.UserAgent != "" {
			store.UserAgent = config.Store.UserAgent
		}
		if config.Store.APIURL != "" {
			store.APIURL = config.Store.APIURL
		}
	}

	s, err := buildSession(store, config, logger)
	if err != nil {
		logger.Fatal("preparing the session", zap.Error(err))
	}

	if s.pool.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "talent pool is empty"))
		return
	}

	if question := cmd.Flag("question").Value.String(); question != "" {
		if err := askAssistant(ctx, s, question); err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}
		if err := showCurrentTab(s); err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}
		return
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(ctx, action, s); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func buildSession(store *talent.Client, config *Config, logger *zap.Logger) (*session, error) {
	pool, err := store.GetTalentPool()
	if err != nil {
		return nil, fmt.Errorf("getting the talent pool: %w", err)
	}

	logger.Info("getting the talent pool", zap.Int("count", pool.Len()))

	roles, err := store.GetActiveRoles()
	if err != nil {
		return nil, fmt.Errorf("getting active roles: %w", err)
	}

	logger.Info("getting active roles", zap.Int("count", roles.Len()))

	histories, err := store.GetJobHistories()
	if err != nil {
		return nil, fmt.Errorf("getting job histories: %w", err)
	}

	companiesFile := strings.TrimSpace(config.CompaniesFile)
	if companiesFile == "" {
		companiesFile = strings.TrimSpace(viper.GetString("companies-file"))
	}

	profiles, err := company.LoadFile(companiesFile)
	if err != nil {
		return nil, fmt.Errorf("loading tracked companies: %w", err)
	}

	logger.Info("loading tracked companies", zap.Int("count", len(profiles)))

	state := filtering.NewState()

	chatSession := chat.NewSession(logger, state, responseDelay(config))
	chatSession.OnNewQuestion(func() { state.SetSearchTerm("") })

	return &session{
		logger:   logger,
		pool:     pool,
		roles:    roles,
		entries:  matching.Aggregate(pool, histories),
		profiles: profiles,
		state:    state,
		pipeline: filtering.NewPipeline(logger),
		chat:     chatSession,
	}, nil
}

func handleAction(ctx context.Context, action string, s *session) error {
	switch action {
	case PromptAsk:
		questionPrompt := promptui.Prompt{Label: "Question"}
		question, err := questionPrompt.Run()
		if err != nil {
			return err
		}
		return askAssistant(ctx, s, question)
	case PromptShowTalent:
		s.state.Apply(filtering.TabAction(filtering.TabTalent))
		return showCurrentTab(s)
	case PromptShowRoles:
		s.state.Apply(filtering.TabAction(filtering.TabRoles))
		return showCurrentTab(s)
	case PromptShowCompanies:
		s.state.Apply(filtering.TabAction(filtering.TabCompanies))
		return showCurrentTab(s)
	case PromptInspectRole:
		return inspectRole(s)
	case PromptInspectTalent:
		return inspectTalent(s)
	case PromptReportByCompany:
		pretty, _ := json.MarshalIndent(s.pool.ReportByCompany(), "", "  ")
		s.logger.Info(string(pretty), zap.Int("talent count", s.pool.Len()))
		return nil
	case PromptPoolToFile:
		filename, err := s.pool.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump talent pool to file: %w", err)
		}
		s.logger.Info("dumping talent pool to file", zap.String("filename", filename))
		return nil
	case PromptResetFilters:
		s.state.Reset()
		s.chat.Reset()
		s.logger.Info("filters reset")
		return nil
	case PromptExit:
		s.logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// inspectRole shows one role with its matching candidates.
func inspectRole(s *session) error {
	items := make([]string, 0, s.roles.Len())
	for _, role := range s.roles.Items {
		items = append(items, fmt.Sprintf("%s %s / %s", role.ID, role.Title, role.Department))
	}

	rolePrompt := promptui.Select{
		Label: "Choose a role and press ENTER",
		Items: append(items, PromptBack),
	}

	_, selected, err := rolePrompt.Run()
	if err != nil {
		return err
	}
	if selected == PromptBack {
		return nil
	}

	roleID := strings.Split(selected, " ")[0]
	role := s.roles.FindByID(roleID)
	if role == nil {
		return fmt.Errorf("there is no such role id %s", roleID)
	}

	views := filtering.BuildRoleViews(&talent.Roles{Items: []*talent.Role{role}}, s.entries)

	pretty, err := json.MarshalIndent(views[0], "", "  ")
	if err != nil {
		return fmt.Errorf("rendering role %s: %w", roleID, err)
	}

	fmt.Println(string(pretty))
	return nil
}

// inspectTalent shows one talent record in full.
func inspectTalent(s *session) error {
	items := make([]string, 0, s.pool.Len())
	for _, record := range s.pool.Items {
		items = append(items, fmt.Sprintf("%s %s / %s", record.ID, record.Name, record.Company))
	}

	talentPrompt := promptui.Select{
		Label: "Choose a talent record and press ENTER",
		Items: append(items, PromptBack),
	}

	_, selected, err := talentPrompt.Run()
	if err != nil {
		return err
	}
	if selected == PromptBack {
		return nil
	}

	talentID := strings.Split(selected, " ")[0]
	record := s.pool.FindByID(talentID)
	if record == nil {
		return fmt.Errorf("there is no such talent id %s", talentID)
	}

	pretty, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("rendering talent %s: %w", talentID, err)
	}

	fmt.Println(string(pretty))
	return nil
}

func askAssistant(ctx context.Context, s *session, question string) error {
	reply, err := s.chat.Process(ctx, question)
	if err != nil {
		if errors.Is(err, chat.ErrEmptyMessage) {
			return nil
		}
		return fmt.Errorf("processing the question: %w", err)
	}

	fmt.Println(reply.Content)
	return nil
}

// showCurrentTab prints the active tab's filtered view as indented json.
func showCurrentTab(s *session) error {
	snap := s.state.Snapshot()

	var view any
	var viewName string
	var size int
	switch snap.ActiveTab {
	case filtering.TabRoles:
		views := s.pipeline.Roles(snap, filtering.BuildRoleViews(s.roles, s.entries))
		view, viewName, size = views, "role-views", len(views)
	case filtering.TabCompanies:
		views := s.pipeline.Companies(snap, filtering.BuildCompanyViews(s.entries, s.profiles))
		view, viewName, size = views, "company-views", len(views)
	default:
		filtered := s.pipeline.Talents(snap, s.entries)
		entries := make([]*matching.TalentWithMatch, len(filtered))
		copy(entries, filtered)
		filtering.SortByMatchScore(entries)
		view, viewName, size = filtering.BuildTalentCards(entries), "talent-cards", len(entries)
	}

	log := logger.WithFields(s.logger, logger.ViewFields(viewName, snap.ActiveTab)...)
	log.Info("rendering the view", zap.Int("count", size))

	pretty, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return fmt.Errorf("rendering the %s tab: %w", snap.ActiveTab, err)
	}

	fmt.Println(string(pretty))
	return nil
}

func resolveToken(config *Config) (string, error) {
	if config == nil {
		return "", errors.New("config is required")
	}

	var tokenFile string
	if config.Store != nil {
		tokenFile = strings.TrimSpace(config.Store.TokenFile)
	}
	if tokenFile == "" {
		tokenFile = strings.TrimSpace(viper.GetString("store.token-file"))
	}

	if tokenFile == "" {
		return "", errors.New("talent store token file is not configured")
	}

	return secrets.Load(secrets.Source{
		Name: "talent store token",
		File: tokenFile,
	})
}

func responseDelay(config *Config) time.Duration {
	if config == nil || config.Chat == nil || config.Chat.ResponseDelayMS < 0 {
		return defaultResponseDelay
	}
	if config.Chat.ResponseDelayMS == 0 {
		return defaultResponseDelay
	}
	return time.Duration(config.Chat.ResponseDelayMS) * time.Millisecond
}
