package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// settingsFromFlags assembles the startup configuration from command-line
// flags. The falloff anchors default to a descending curve (full scale at a
// focal center, minimum scale at the far edge); -reversed flips them.
func settingsFromFlags() gameSettings {
	startY, endY := 1.0, 0.0
	if *reversedFlag {
		startY, endY = 0.0, 1.0
	}
	nearTint, err := colorful.Hex(*nearTintFlag)
	if err != nil {
		log.Fatalf("parsing -near-tint %q: %v", *nearTintFlag, err)
	}
	farTint, err := colorful.Hex(*farTintFlag)
	if err != nil {
		log.Fatalf("parsing -far-tint %q: %v", *farTintFlag, err)
	}
	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return gameSettings{
		falloff: falloffSettings{
			p1x: *p1xFlag, p1y: *p1yFlag,
			p2x: *p2xFlag, p2y: *p2yFlag,
			startY: startY, endY: endY,
			minScale: *minScaleFlag,
			maxScale: *maxScaleFlag,
		},
		anim: animSettings{
			enabled:     !*pausedFlag,
			speed:       *speedFlag,
			centerCount: *centersFlag,
			randomness:  *randomnessFlag,
			boundsScale: *boundsScaleFlag,
		},
		opacity:  *opacityFlag,
		nearTint: nearTint,
		farTint:  farTint,
		seed:     seed,
		debug:    *debugFlag,
		useGPU:   *useGPUFlag,
	}
}

func main() {
	flag.Parse()

	if *recordDefaultPGO {
		if _, err := startDefaultPGORecording("default.pgo", pgoRecordDuration); err != nil {
			log.Fatalf("starting PGO recording: %v", err)
		}
	}

	g := newGame(settingsFromFlags())

	ebiten.SetWindowSize(windowW, windowH)
	ebiten.SetWindowTitle("Focal Grid")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("running game: %v", err)
	}
}
