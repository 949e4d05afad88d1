package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/quietloop/nightmarket/story"
)

func main() {
	chapterName := flag.String("chapter", "", "start at a chapter (start, intro, ch1..ch5, end)")
	debug := flag.Bool("debug", false, "enable debug overlay")
	watch := flag.Bool("watch", false, "reload chapter specs and scripts on edit")
	mute := flag.Bool("mute", false, "disable audio")
	flag.Parse()

	start := story.ChapterStart
	if *chapterName != "" {
		ch, err := story.ParseChapter(*chapterName)
		if err != nil {
			log.Fatal(err)
		}
		start = ch
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("nightmarket")

	game := NewGame(start, *debug, *watch, *mute)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
