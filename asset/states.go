package asset

// DefaultStateConfig is the built-in state graph, overridable with -states
// Region "app" switches between the title screen and the arena
// Region "game" tracks play within the arena and idles in Invalid outside it
const DefaultStateConfig = `
regions:
  app:
    initial: StartMenu
  game:
    initial: Invalid

states:
  # === App region ===

  StartMenu:
    on_enter:
      - action: StartMenu
      - action: AppStateDespawn
    transitions:
      - trigger: EventMenuConfirm
        target: Game

  Game:
    on_enter:
      - action: SetupArena
      - action: GameUISpawn
      - action: AppStateDespawn
      - action: EmitEvent
        event: EventGameStart
    transitions:
      - trigger: EventReturnToMenu
        target: StartMenu

  # === Game region ===

  Invalid:
    on_enter:
      - action: AppGameStateDespawn
      - action: ResumeClock
    transitions:
      - trigger: EventGameStart
        target: Running

  # Running and Pause share the arena, GameOver ends it
  InPlay:
    parent: Root

  Running:
    parent: InPlay
    on_enter:
      - action: AppGameStateDespawn
      - action: ResumeClock
    transitions:
      - trigger: EventPauseToggle
        target: Pause
      - trigger: EventGameOver
        target: GameOver

  Pause:
    parent: InPlay
    on_enter:
      - action: PauseMenu
      - action: AppGameStateDespawn
      - action: PauseClock
    transitions:
      - trigger: EventPauseToggle
        target: Running
      - trigger: EventMenuConfirm
        target: Invalid
        actions:
          - action: EmitEvent
            event: EventReturnToMenu

  GameOver:
    on_enter:
      - action: GameOverMenu
      - action: AppGameStateDespawn
      - action: RecordScore
    transitions:
      - trigger: EventMenuConfirm
        target: Invalid
        guard: StateTimeExceeds
        guard_args:
          ms: 800
        actions:
          - action: EmitEvent
            event: EventReturnToMenu
`
