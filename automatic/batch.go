package automatic

// Data collection for automatic games. Allows computer vs computer game
// batches across several workers.

import (
	"context"
	"errors"
	"expvar"
	"os"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/domino14/corners/config"
)

var (
	CVCCounter *expvar.Int
	IsPlaying  *expvar.Int
)

func init() {
	CVCCounter = expvar.NewInt("cvcCounter")
	IsPlaying = expvar.NewInt("isPlaying")
}

type job struct{}

// StartCompVCompGames plays numGames automated games across the given
// number of worker goroutines, writing one CSV line per turn to
// outputFilename. It blocks until all games finish or ctx is cancelled.
func StartCompVCompGames(ctx context.Context, cfg *config.Config,
	numGames int, threads int, outputFilename string) error {

	if IsPlaying.Value() > 0 {
		return errors.New("games are already being played, please wait till complete")
	}

	logfile, err := os.Create(outputFilename)
	if err != nil {
		return err
	}
	log.Debug().Msgf("Starting %v games, %v threads", numGames, threads)

	CVCCounter.Set(0)
	jobs := make(chan job, 100)
	logChan := make(chan string, 100)
	var wg sync.WaitGroup
	wg.Add(threads)

	for i := 1; i <= threads; i++ {
		go func(i int) {
			defer wg.Done()
			r := NewGameRunner(logChan, cfg)
			IsPlaying.Add(1)
			for range jobs {
				r.playFullGame()
				CVCCounter.Add(1)
			}
			IsPlaying.Add(-1)
		}(i)
	}

	go func() {
	gameLoop:
		for i := 1; i < numGames+1; i++ {
			jobs <- job{}
			if i%1000 == 0 {
				log.Info().Msgf("Queued %v jobs", i)
			}
			select {
			case <-ctx.Done():
				// exit early
				log.Info().Msg("Got stop signal, exiting soon...")
				break gameLoop
			default:
				// do nothing
			}
		}

		close(jobs)
		log.Debug().Msg("Finished queueing all jobs.")
		wg.Wait()
		log.Debug().Msg("All games finished.")
		close(logChan)
	}()

	writerDone := make(chan struct{})
	go func() {
		logfile.WriteString("gameID,turn,playerID,unplayedCells,played\n")
		for msg := range logChan {
			logfile.WriteString(msg)
		}
		logfile.Close()
		log.Debug().Msg("Exiting turn logger goroutine!")
		close(writerDone)
	}()

	<-writerDone
	log.Info().Int64("games", CVCCounter.Value()).Msg("batch complete")
	return nil
}
