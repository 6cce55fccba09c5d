package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/comalice/storex"
	"github.com/comalice/storex/timers"
)

func main() {
	configPath := flag.String("config", "", "YAML file declaring the initial timer list")
	flag.Parse()

	initial := timers.State{}
	var opts []storex.Option[timers.State, timers.Action]
	if *configPath != "" {
		cfg, err := timers.LoadConfig(*configPath)
		if err != nil {
			panic(err)
		}
		initial, err = cfg.InitialState()
		if err != nil {
			panic(err)
		}
		if cfg.ID != "" {
			opts = append(opts, storex.WithID[timers.State, timers.Action](cfg.ID))
		}
	}

	notes := make(chan storex.Notification[timers.State, timers.Action], 100)
	publisher := storex.NewChannelPublisher(notes)
	opts = append(opts, storex.WithPublisher[timers.State, timers.Action](publisher))

	st, err := timers.New(initial, opts...)
	if err != nil {
		panic(err)
	}

	unsubscribe := st.Subscribe(func(s timers.State) {
		fmt.Printf("state: running=%v items=%d\n", s.Running, len(s.Items))
	})
	defer unsubscribe()

	st.Dispatch(timers.Start{})
	st.Dispatch(timers.AddItem{Item: timers.Item{Name: "pasta", Duration: 8 * time.Minute}})
	st.Dispatch(timers.AddItem{Item: timers.Item{Name: "eggs", Duration: 5*time.Minute + 30*time.Second}})
	st.Dispatch(timers.Stop{})

	publisher.Close()
	for note := range notes {
		fmt.Printf("note: store=%s seq=%d action=%T\n", note.Meta.StoreID, note.Meta.Seq, note.Action)
	}

	fmt.Println("final:")
	for _, item := range st.State().Items {
		fmt.Printf("  %-8s %s\n", item.Name, item.Duration)
	}
}
