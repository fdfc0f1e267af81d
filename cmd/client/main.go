package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	wrappers "github.com/golang/protobuf/ptypes/wrappers"
	taskv1 "github.com/teooliver/taskstore/api/task/v1"
	userv1 "github.com/teooliver/taskstore/api/user/v1"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func main() {
	addr := flag.String("addr", "localhost:50051", "gRPC server address")
	mode := flag.String("mode", "list", "mode: create | get | list | update | delete | create-user | list-users")
	title := flag.String("title", "", "title for create/update")
	desc := flag.String("desc", "", "description for create/update")
	done := flag.Bool("done", false, "completed flag for update")
	name := flag.String("name", "", "name for create-user")
	email := flag.String("email", "", "email for create-user")
	id := flag.Int64("id", 0, "id for get/update/delete")
	flag.Parse()

	conn, err := grpc.NewClient(
		*addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		log.Fatalf("failed to connect: %v", err)
	}
	defer conn.Close()

	tasks := taskv1.NewTaskServiceClient(conn)
	users := userv1.NewUserServiceClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	switch *mode {
	case "create":
		if *title == "" {
			log.Fatal("title is required for create")
		}
		res, err := tasks.CreateTask(ctx, &taskv1.CreateTaskRequest{
			Title:       *title,
			Description: *desc,
		})
		if err != nil {
			log.Fatalf("CreateTask failed: %v", err)
		}
		printTask("created", res)

	case "get":
		if *id == 0 {
			log.Fatal("id is required for get")
		}
		res, err := tasks.GetTask(ctx, &taskv1.GetTaskRequest{Id: *id})
		if err != nil {
			log.Fatalf("GetTask failed: %v", err)
		}
		printTask("task", res)

	case "list":
		res, err := tasks.ListTasks(ctx, &taskv1.ListTasksRequest{})
		if err != nil {
			log.Fatalf("ListTasks failed: %v", err)
		}
		if len(res.GetTasks()) == 0 {
			fmt.Println("no tasks")
			return
		}
		fmt.Println("tasks:")
		for _, t := range res.GetTasks() {
			printTask("-", t)
		}

	case "update":
		if *id == 0 {
			log.Fatal("id is required for update")
		}
		// 指定されたフラグだけを wrapper に詰める（未指定は現在値を保持）
		req := &taskv1.UpdateTaskRequest{Id: *id}
		flag.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "title":
				req.Title = &wrappers.StringValue{Value: *title}
			case "desc":
				req.Description = &wrappers.StringValue{Value: *desc}
			case "done":
				req.Completed = &wrappers.BoolValue{Value: *done}
			}
		})
		res, err := tasks.UpdateTask(ctx, req)
		if err != nil {
			log.Fatalf("UpdateTask failed: %v", err)
		}
		printTask("updated", res)

	case "delete":
		if *id == 0 {
			log.Fatal("id is required for delete")
		}
		res, err := tasks.DeleteTask(ctx, &taskv1.DeleteTaskRequest{Id: *id})
		if err != nil {
			log.Fatalf("DeleteTask failed: %v", err)
		}
		fmt.Printf("delete result: success=%v\n", res.GetSuccess())

	case "create-user":
		if *name == "" || *email == "" {
			log.Fatal("name and email are required for create-user")
		}
		res, err := users.CreateUser(ctx, &userv1.CreateUserRequest{
			Name:  *name,
			Email: *email,
		})
		if err != nil {
			log.Fatalf("CreateUser failed: %v", err)
		}
		fmt.Printf("created: id=%d name=%s email=%s\n", res.GetId(), res.GetName(), res.GetEmail())

	case "list-users":
		res, err := users.ListUsers(ctx, &userv1.ListUsersRequest{})
		if err != nil {
			log.Fatalf("ListUsers failed: %v", err)
		}
		if len(res.GetUsers()) == 0 {
			fmt.Println("no users")
			return
		}
		fmt.Println("users:")
		for _, u := range res.GetUsers() {
			fmt.Printf("- id=%d name=%s email=%s\n", u.GetId(), u.GetName(), u.GetEmail())
		}

	default:
		log.Fatalf("unknown mode: %s", *mode)
	}
}

func printTask(prefix string, t *taskv1.Task) {
	fmt.Printf("%s id=%d title=%s description=%s completed=%v\n",
		prefix, t.GetId(), t.GetTitle(), t.GetDescription(), t.GetCompleted())
}
