// Command walkthrough drives one complete user workflow against a running
// API server: pick the nearest restroom, navigate to it with a scripted
// location feed, pass the payment gate, hold a usage session with chat,
// then finish and leave a review.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"sort"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"restroomfinder/internal/pkg/geo"
	"restroomfinder/pkg/client"
	"restroomfinder/pkg/client/session"
)

// scriptedWalk replays a fixed approach path toward a target, one position
// per step interval.
type scriptedWalk struct {
	points []geo.Point
	step   time.Duration
}

func (w scriptedWalk) Positions(ctx context.Context) (<-chan geo.Point, error) {
	out := make(chan geo.Point)
	go func() {
		defer close(out)
		for _, p := range w.points {
			select {
			case <-ctx.Done():
				return
			case out <- p:
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(w.step):
			}
		}
	}()
	return out, nil
}

// approach interpolates a straight line from start to the target, ending
// inside the arrival threshold.
func approach(start, target geo.Point, steps int) []geo.Point {
	points := make([]geo.Point, 0, steps)
	for i := 1; i <= steps; i++ {
		f := float64(i) / float64(steps)
		points = append(points, geo.Point{
			Latitude:  start.Latitude + (target.Latitude-start.Latitude)*f,
			Longitude: start.Longitude + (target.Longitude-start.Longitude)*f,
		})
	}
	return points
}

func main() {
	baseURL := flag.String("base-url", "http://localhost:5002", "API server base URL")
	payCash := flag.Bool("cash", true, "pay cash at paid restrooms (transfer needs owner confirmation)")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	c := client.New(*baseURL)
	store := session.NewStore(c)

	user, err := store.EnsureUser(ctx)
	if err != nil {
		log.Fatal("user setup failed:", err)
	}
	log.Printf("walking as %s (id=%d, local_only=%v)", user.Username, user.ID, store.LocalOnly())

	restrooms, err := c.ListRestrooms(ctx)
	if err != nil {
		log.Fatal("restroom list failed:", err)
	}
	if len(restrooms) == 0 {
		log.Fatal("no restrooms seeded; run cmd/seed first")
	}

	here := geo.Point{Latitude: 10.8752, Longitude: 106.7846}
	sort.Slice(restrooms, func(i, j int) bool {
		di := geo.Distance(here, geo.Point{Latitude: restrooms[i].Latitude, Longitude: restrooms[i].Longitude})
		dj := geo.Distance(here, geo.Point{Latitude: restrooms[j].Latitude, Longitude: restrooms[j].Longitude})
		return di < dj
	})
	target := restrooms[0]
	targetPoint := geo.Point{Latitude: target.Latitude, Longitude: target.Longitude}
	log.Printf("nearest: %s (%.0f m away, free=%v price=%d)",
		target.Name, geo.Distance(here, targetPoint), target.IsFree, target.Price)

	userID := user.ID
	arrived := make(chan struct{})
	tracker := session.NewTracker(c, target, func() { close(arrived) })
	tracker.NotifyNavigationStarted(ctx, &userID)

	walk := scriptedWalk{points: approach(here, targetPoint, 8), step: 250 * time.Millisecond}
	go func() {
		if err := tracker.Track(ctx, walk); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("tracking stopped: %v", err)
		}
	}()

	select {
	case <-arrived:
		log.Printf("arrived at %s", target.Name)
		tracker.NotifyArrived(ctx, &userID)
	case <-ctx.Done():
		log.Fatal("never arrived:", ctx.Err())
	}

	ctl := session.NewController(c, store, nil)
	decision, err := ctl.BeginUsage(ctx, target)
	if err != nil {
		log.Fatal("usage start failed:", err)
	}

	if decision == session.DecisionPaymentRequired {
		method := "cash"
		if !*payCash {
			method = "transfer"
		}
		log.Printf("payment of %d required, paying by %s", target.Price, method)

		outcome, err := ctl.SubmitPayment(ctx, target, method, "data:image/jpeg;base64,", "walkthrough")
		if err != nil {
			log.Fatal("payment failed:", err)
		}
		if outcome.AwaitingConfirmation {
			log.Printf("payment %d pending, waiting for the owner", outcome.PaymentID)
			poller := session.NewStatusPoller(c, user.ID, target.ID)
			result, err := poller.Run(ctx)
			if err != nil {
				log.Fatal("post-confirmation start failed:", err)
			}
			if result != session.PollConfirmed {
				log.Fatalf("payment never confirmed after %d checks", poller.Attempts())
			}
		}
	}
	log.Printf("usage session started at %s", target.Name)

	countdown := session.NewCountdown(
		session.WithBudget(5),
		session.WithOnTick(func(remaining int) { log.Printf("time left: %ds", remaining) }),
		session.WithOnExpired(func() { log.Print("time is up") }),
	)
	usage := session.NewUsageSession(c, store, target, session.WithCountdown(countdown))
	go countdown.Run(ctx)

	usage.OpenChat(ctx)
	chat := session.NewChatPoller(c, target.ID, user.ID)
	if err := chat.Send(ctx, "Xin chào, tôi vừa vào", "normal"); err != nil {
		log.Printf("chat send failed: %v", err)
	}
	usage.RequestPaper(ctx)

	time.Sleep(6 * time.Second)

	if err := countdown.Extend(); err != nil {
		log.Printf("extension refused: %v", err)
	} else {
		log.Printf("extended, %ds left", countdown.Remaining())
	}

	if err := usage.Finish(ctx); err != nil {
		log.Fatal("finish failed:", err)
	}
	log.Print("usage session finished")

	err = c.CreateReview(ctx, client.CreateReviewRequest{
		RestroomID: target.ID,
		UserID:     user.ID,
		Rating:     5,
		Comment:    "Sạch sẽ, chủ nhà thân thiện",
	})
	if err != nil {
		log.Printf("review failed: %v", err)
	} else {
		log.Print("review left")
	}

	if history, err := c.History(ctx, user.ID); err == nil {
		log.Printf("history: %d sessions, %d reviews, walkthrough complete",
			len(history.UsageHistory), len(history.Reviews))
	}
}
