// cgol: Word-Seeded Game of Life Simulator
// Copyright (C) 2026  cgol contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Command cgol-tui is a terminal front-end standing in for the original
// Streamlit UI: it lets an operator type a word, see its GameResult, copy
// the result to the clipboard, and watch live resource usage while the
// server computes. It holds no simulation logic of its own — every lookup
// goes through AssistantClient to the same /cgol/game endpoint the server
// exposes, so it can never show anything but a finished GameResult. Its
// history view is backed by the same ResultCache file the server writes
// to, opened read-only, so it shows every word looked up by any process,
// not just the ones typed into this session.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cgol/internal/assistant"
	"cgol/internal/cache"
	"cgol/internal/config"
	"cgol/internal/engine"
	"cgol/internal/monitor"
)

const cacheRefreshInterval = 5 * time.Second

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#FFFF00")).
			Padding(0, 2).
			Bold(true).
			Width(72)

	historyStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#9CA3AF"))

	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#2563EB")).
			Padding(0, 1)

	wordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#60A5FA")).Bold(true)

	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)

	copyNoticeStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#10B981")).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF")).Italic(true)
)

type gameResultMsg struct {
	word   string
	result assistant.GameResult
	err    error
}

type cacheSyncMsg struct {
	entries map[string]engine.GameResult
	err     error
}

type resourceTickMsg monitor.Snapshot

type hideCopyNoticeMsg struct{}

// model is the bubbletea model for the word-lookup TUI.
type model struct {
	client       *assistant.Client
	mon          *monitor.Monitor
	store        *cache.BoltCache // read-only handle onto the server's cache file; nil if unopenable
	input        textinput.Model
	history      viewport.Model
	lines        map[string]string // word -> rendered history line, merges cache-backed and live entries
	lastResult   string
	showCopyNote bool
	resourceLine string
}

func newModel(client *assistant.Client, mon *monitor.Monitor, store *cache.BoltCache) model {
	input := textinput.New()
	input.Placeholder = "type a word and press enter"
	input.Focus()
	input.CharLimit = 256
	input.Width = 50

	history := viewport.New(70, 12)

	m := model{
		client:  client,
		mon:     mon,
		store:   store,
		input:   input,
		history: history,
		lines:   make(map[string]string),
	}
	m.refreshHistory()
	return m
}

func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, tickResources(m.mon)}
	if m.store != nil {
		cmds = append(cmds, loadCache(m.store))
	}
	return tea.Batch(cmds...)
}

func tickResources(mon *monitor.Monitor) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return resourceTickMsg(mon.Sample())
	})
}

// loadCache scans the read-only cache handle for every word any process has
// ever looked up, so a freshly started TUI isn't empty just because this is
// its first run against an already-populated cache.
func loadCache(store *cache.BoltCache) tea.Cmd {
	return func() tea.Msg {
		entries, err := store.All()
		return cacheSyncMsg{entries: entries, err: err}
	}
}

func playWordCmd(client *assistant.Client, word string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		result, err := client.PlayWord(ctx, word)
		return gameResultMsg{word: word, result: result, err: err}
	}
}

func formatResultLine(word string, numGenerations, score int, stopReason string) string {
	return fmt.Sprintf("%s  generations=%d score=%d reason=%s",
		wordStyle.Render(word), numGenerations, score, stopReason)
}

// refreshHistory re-renders the viewport from the merged line set, sorted by
// word so cache-backed and live entries interleave deterministically.
func (m *model) refreshHistory() {
	if len(m.lines) == 0 {
		m.history.SetContent(helpStyle.Render("no lookups yet"))
		return
	}
	words := make([]string, 0, len(m.lines))
	for w := range m.lines {
		words = append(words, w)
	}
	sort.Strings(words)

	rendered := make([]string, len(words))
	for i, w := range words {
		rendered[i] = m.lines[w]
	}
	m.history.SetContent(strings.Join(rendered, "\n"))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			word := strings.TrimSpace(m.input.Value())
			if word == "" {
				return m, nil
			}
			m.input.SetValue("")
			return m, playWordCmd(m.client, word)
		case "r":
			if m.store != nil {
				return m, loadCache(m.store)
			}
		case "y":
			if m.lastResult != "" {
				_ = clipboard.WriteAll(m.lastResult)
				m.showCopyNote = true
				return m, tea.Tick(2*time.Second, func(time.Time) tea.Msg { return hideCopyNoticeMsg{} })
			}
		}

	case gameResultMsg:
		if msg.err != nil {
			m.lines[msg.word] = fmt.Sprintf("%s  %s", wordStyle.Render(msg.word), errorStyle.Render(msg.err.Error()))
		} else {
			m.lines[msg.word] = formatResultLine(msg.word, msg.result.NumGenerations, msg.result.Score, msg.result.StopReason)
			if payload, err := json.Marshal(msg.result); err == nil {
				m.lastResult = string(payload)
			}
		}
		m.refreshHistory()
		m.history.GotoBottom()
		return m, nil

	case cacheSyncMsg:
		if msg.err == nil {
			for word, result := range msg.entries {
				m.lines[word] = formatResultLine(word, result.NumGenerations, result.Score, string(result.StopReason))
			}
			m.refreshHistory()
		}
		if m.store != nil {
			return m, scheduleCacheRefresh(m.store)
		}
		return m, nil

	case resourceTickMsg:
		m.resourceLine = fmt.Sprintf("cpu %.1f%% | mem %.1f%% | uptime %.0fs",
			msg.CPUPercent, msg.MemoryPercent, msg.UptimeSeconds)
		return m, tickResources(m.mon)

	case hideCopyNoticeMsg:
		m.showCopyNote = false
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// scheduleCacheRefresh waits cacheRefreshInterval then re-scans the cache,
// keeping the periodic background-sync loop alive for the life of the
// program.
func scheduleCacheRefresh(store *cache.BoltCache) tea.Cmd {
	return tea.Tick(cacheRefreshInterval, func(time.Time) tea.Msg {
		entries, err := store.All()
		return cacheSyncMsg{entries: entries, err: err}
	})
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("cgol — word-seeded Game of Life"))
	b.WriteString("\n\n")
	b.WriteString(historyStyle.Render(m.history.View()))
	b.WriteString("\n")
	b.WriteString(inputStyle.Render(m.input.View()))
	b.WriteString("\n")
	if m.showCopyNote {
		b.WriteString(copyNoticeStyle.Render("copied last result to clipboard"))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("enter: run word · r: refresh history · y: copy last result · esc: quit"))
	if m.resourceLine != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(m.resourceLine))
	}
	return b.String()
}

func main() {
	cfg := config.Load()

	addr := flag.String("server", "http://localhost"+cfg.BindAddress, "cgol server base URL")
	cacheDB := flag.String("cache-db", cfg.CacheDBPath, "path to the server's result cache database file")
	flag.Parse()

	client := assistant.New(*addr)
	mon := monitor.New()

	store, err := cache.OpenReadOnly(*cacheDB)
	if err != nil {
		log.Printf("result cache unavailable for history view, starting with an empty history: %v", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	program := tea.NewProgram(newModel(client, mon, store))
	if _, err := program.Run(); err != nil {
		fmt.Println("cgol-tui error:", err)
	}
}
