package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/hybridcredit/credit-risk-frontend/apiclient"
	"github.com/hybridcredit/credit-risk-frontend/cache"
	"github.com/hybridcredit/credit-risk-frontend/controllers"
	"github.com/hybridcredit/credit-risk-frontend/examples"
	"github.com/hybridcredit/credit-risk-frontend/feedback"
	"github.com/hybridcredit/credit-risk-frontend/localstore"
	"github.com/hybridcredit/credit-risk-frontend/poller"
	"github.com/hybridcredit/credit-risk-frontend/projector"
	"github.com/hybridcredit/credit-risk-frontend/report"
	"github.com/hybridcredit/credit-risk-frontend/responders"
	"github.com/hybridcredit/credit-risk-frontend/session"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	apiURL := os.Getenv("RISK_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8000/api"
	}
	region := os.Getenv("DEFAULT_REGION")
	if region == "" {
		region = "LIMA"
	}
	reportDir := os.Getenv("REPORT_DIR")
	if reportDir == "" {
		reportDir = "reports"
	}
	exposeErrors := os.Getenv("EXPOSE_ERRORS") == "1"

	client := &apiclient.Client{
		BaseURL: apiURL,
		Doer:    &http.Client{Timeout: 30 * time.Second},
		Limiter: rate.NewLimiter(5, 10),
	}

	sessions := session.NewStore()
	exampleLister := &examples.Lister{
		Source:     client,
		CacheStore: cache.NewLRUStore(64, time.Hour),
	}
	generator := &report.Generator{FileStore: localstore.New(reportDir)}
	recorder := &feedback.Recorder{Submitter: client}
	comparer := &projector.ComparisonProjector{Predictor: client, Session: sessions}
	regionalLoader := &projector.RegionalProjector{Source: client}

	status := poller.NewStatus()
	refresher := &poller.Poller{
		Health:   client,
		Factors:  client,
		Status:   status,
		Region:   region,
		Interval: time.Minute,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go refresher.Run(ctx)

	cm := &WebContextMaker{}
	simple := &responders.WebSimpleResponder{ExposeErrors: exposeErrors}
	download := &responders.DownloadResponder{ExposeErrors: exposeErrors}

	evaluate := &controllers.Evaluate{
		Predictor:     client,
		ExampleLister: exampleLister,
		Session:       sessions,
		Status:        status,
	}
	compare := &controllers.Compare{Comparer: comparer}
	regional := &controllers.Regional{Loader: regionalLoader}
	reportCtrl := &controllers.Report{Generator: generator, Session: sessions}
	regionalCSV := &controllers.RegionalCSV{Loader: regionalLoader, Generator: generator}
	feedbackCtrl := &controllers.Feedback{Recorder: recorder, Session: sessions}
	analytics := &controllers.Analytics{Source: client}
	modelDelete := &controllers.ModelDelete{Admin: client, Session: sessions}

	r := mux.NewRouter()
	r.HandleFunc("/", evaluate.HandleFunc(cm, &responders.WebEvaluateResponder{})).Methods("GET", "POST")
	r.HandleFunc("/compare", compare.HandleFunc(cm, &responders.WebCompareResponder{})).Methods("GET")
	r.HandleFunc("/regional", regional.HandleFunc(cm, &responders.WebRegionalResponder{})).Methods("GET")
	r.HandleFunc("/regional.csv", regionalCSV.HandleFunc(cm, download)).Methods("GET")
	r.HandleFunc("/report", reportCtrl.HandleFunc(cm, download)).Methods("GET")
	r.HandleFunc("/feedback", feedbackCtrl.HandleFunc(cm, &responders.WebFeedbackResponder{})).Methods("POST")
	r.HandleFunc("/analytics", analytics.HandleFunc(cm, &responders.WebAnalyticsResponder{})).Methods("GET")
	r.HandleFunc("/model/delete", modelDelete.HandleFunc(cm, simple)).Methods("POST")

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig

		cancel()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		srv.Shutdown(shutdownCtx)
	}()

	logrus.Infof("Listening on :%s, risk API at %s", port, apiURL)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logrus.Fatal(err)
	}
}
