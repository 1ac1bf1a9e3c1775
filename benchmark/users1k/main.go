package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	companionGrpc "carecompanion.app/companion-service/pkg/grpc"
	"carecompanion.app/companion-service/pkg/models"
)

var maxUsers int = 1000
var remindersPerUser int = 5
var httpHostPort string = "127.0.0.1:1080"
var grpcHostPort string = "127.0.0.1:10801"

var grpcClient *companionGrpc.ReminderServiceClient

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
var rndMu sync.Mutex

type session struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func main() {
	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	conn, err := grpc.NewClient(grpcHostPort, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatal("Failed to connect to gRPC server:", err)
	}
	defer conn.Close()
	grpcClient = companionGrpc.NewReminderServiceClient(conn)

	fmt.Printf("gRPC client created\n")

	sessions := make([]session, maxUsers)

	startTime := time.Now()
	wg := sync.WaitGroup{}
	for i := range maxUsers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sessions[i] = register()
			for range remindersPerUser {
				addReminder(sessions[i])
			}
			fmt.Printf("\rregistered user %v", i)
		}()
	}
	wg.Wait()
	usedTime := time.Since(startTime)

	actions := maxUsers * (1 + remindersPerUser)
	fmt.Printf(
		"\rregistered %v users with %v reminders each: used time=%v seconds, throughput=%v action/second\n",
		maxUsers, remindersPerUser, usedTime.Seconds(), float64(actions)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := range maxUsers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			doViews(sessions[i])
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rread views for %v users: used time=%v seconds, throughput=%v action/second\n",
		maxUsers, usedTime.Seconds(), float64(maxUsers*4)/usedTime.Seconds(),
	)
}

func flipCoin() bool {
	rndMu.Lock()
	defer rndMu.Unlock()
	return rnd.Int31n(100000)%2 == 0
}

func randomClock() string {
	rndMu.Lock()
	defer rndMu.Unlock()
	return fmt.Sprintf("%02d:%02d", rnd.Intn(24), rnd.Intn(60))
}

func postJSON(path, token string, payload any, out any) {
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest(http.MethodPost, fmt.Sprintf("http://%s%s", httpHostPort, path), bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		panic(fmt.Sprintf("POST %s: status %v", path, resp.StatusCode))
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			panic(err)
		}
	}
}

func register() session {
	var s session
	postJSON("/auth/register", "", map[string]string{
		"name":     "Load " + uuid.NewString()[:6],
		"email":    uuid.NewString() + "@load.test",
		"password": "load-test-pass",
		"role":     string(models.RoleElderly),
	}, &s)
	return s
}

func addReminder(s session) {
	postJSON("/reminders", s.Token, map[string]any{
		"type":      string(models.ReminderTypeCustom),
		"title":     "Load reminder",
		"time":      randomClock(),
		"recurring": flipCoin(),
	}, nil)
}

func authorized(s session) context.Context {
	return metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+s.Token)
}

func getView(s session, path string, grpcCall func(context.Context) (*structpb.Struct, error)) {
	if flipCoin() {
		req, _ := http.NewRequest(http.MethodGet, fmt.Sprintf("http://%s%s", httpHostPort, path), nil)
		req.Header.Set("Authorization", "Bearer "+s.Token)
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp.StatusCode)
		}
		return
	}

	if _, err := grpcCall(authorized(s)); err != nil {
		fmt.Printf("\nerror: %v\n", err)
	}
}

func doViews(s session) {
	views := []func(){
		func() {
			getView(s, "/reminders/today", func(ctx context.Context) (*structpb.Struct, error) {
				return grpcClient.TodaysReminders(ctx, &emptypb.Empty{})
			})
		},
		func() {
			getView(s, "/reminders/upcoming", func(ctx context.Context) (*structpb.Struct, error) {
				return grpcClient.UpcomingReminders(ctx, &emptypb.Empty{})
			})
		},
		func() {
			getView(s, "/reminders/missed", func(ctx context.Context) (*structpb.Struct, error) {
				return grpcClient.MissedReminders(ctx, &emptypb.Empty{})
			})
		},
		func() {
			getView(s, "/elderly/"+s.User.ID+"/reminders", func(ctx context.Context) (*structpb.Struct, error) {
				return grpcClient.RemindersForElderly(ctx, &structpb.Struct{Fields: map[string]*structpb.Value{
					"elderlyId": structpb.NewStringValue(s.User.ID),
				}})
			})
		},
	}

	rndMu.Lock()
	rnd.Shuffle(len(views), func(i, j int) { views[i], views[j] = views[j], views[i] })
	pause := time.Duration(100+rnd.Int31n(1000)) * time.Millisecond
	rndMu.Unlock()

	for _, view := range views {
		view()
		fmt.Printf("\rread views for user %v", s.User.ID)
		time.Sleep(pause)
	}
}
