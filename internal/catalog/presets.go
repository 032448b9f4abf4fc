package catalog

import "qrstudio/internal/domain/render"

// families is the built-in preset table in gallery display order.
var families = []familyDef{
	// Transparent
	{Name: "Transparent Black", Group: "Transparent", FG: "#000000", Transparent: true, Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle", "gapped", "vertical_bars"}},
	{Name: "Transparent White", Group: "Transparent", FG: "#FFFFFF", Transparent: true, Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle", "gapped", "vertical_bars"}},
	{Name: "Transparent Gray", Group: "Transparent", FG: "#6B7280", Transparent: true, Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle", "gapped"}},
	{Name: "Transparent Navy", Group: "Transparent", FG: "#1e3a5f", Transparent: true, Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle", "gapped"}},
	{Name: "Transparent Red", Group: "Transparent", FG: "#DC2626", Transparent: true, Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle", "gapped"}},
	{Name: "Transparent Blue", Group: "Transparent", FG: "#2563EB", Transparent: true, Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle", "gapped"}},
	{Name: "Transparent Green", Group: "Transparent", FG: "#16A34A", Transparent: true, Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle", "gapped"}},
	{Name: "Transparent Purple", Group: "Transparent", FG: "#7C3AED", Transparent: true, Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle", "gapped"}},
	{Name: "Transparent Orange", Group: "Transparent", FG: "#EA580C", Transparent: true, Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle", "gapped"}},
	{Name: "Transparent Teal", Group: "Transparent", FG: "#0D9488", Transparent: true, Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle", "gapped"}},
	{Name: "Transparent Pink", Group: "Transparent", FG: "#EC4899", Transparent: true, Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle", "gapped"}},
	{Name: "Transparent Gold", Group: "Transparent", FG: "#D4AF37", Transparent: true, Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle", "gapped"}},

	// Classic
	{Name: "Classic Black", Group: "Classic", FG: "#000000", BG: "#FFFFFF", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle", "gapped", "vertical_bars", "horizontal_bars"}},
	{Name: "Inverted Classic", Group: "Classic", FG: "#FFFFFF", BG: "#000000", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle", "gapped"}},

	// Corporate
	{Name: "Corporate Navy", Group: "Corporate", FG: "#1e3a5f", BG: "#FFFFFF", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle", "gapped"}},
	{Name: "Corporate Blue", Group: "Corporate", FG: "#1E40AF", BG: "#FFFFFF", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle", "gapped"}},
	{Name: "Corporate Gray", Group: "Corporate", FG: "#374151", BG: "#FFFFFF", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle", "gapped"}},
	{Name: "Corporate Charcoal", Group: "Corporate", FG: "#1F2937", BG: "#FFFFFF", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle", "gapped"}},
	{Name: "Corporate Teal", Group: "Corporate", FG: "#0F766E", BG: "#FFFFFF", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle", "gapped"}},
	{Name: "Corporate Slate", Group: "Corporate", FG: "#475569", BG: "#FFFFFF", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle", "gapped"}},
	{Name: "Corporate Indigo", Group: "Corporate", FG: "#4338CA", BG: "#FFFFFF", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle", "gapped"}},
	{Name: "Corporate Forest", Group: "Corporate", FG: "#166534", BG: "#FFFFFF", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle", "gapped"}},

	// Horizontal Gradient
	{Name: "Gradient Blue Purple", Group: "Horizontal Gradient", FG: "#667eea", BG: "#FFFFFF", Mask: render.MaskHorizontal, Gradient: []string{"#667eea", "#764ba2"}, Shapes: []string{"square", "rounded", "circle"}},
	{Name: "Gradient Pink Orange", Group: "Horizontal Gradient", FG: "#f093fb", BG: "#FFFFFF", Mask: render.MaskHorizontal, Gradient: []string{"#f093fb", "#f5576c"}, Shapes: []string{"square", "rounded", "circle"}},
	{Name: "Gradient Teal Green", Group: "Horizontal Gradient", FG: "#11998e", BG: "#FFFFFF", Mask: render.MaskHorizontal, Gradient: []string{"#11998e", "#38ef7d"}, Shapes: []string{"square", "rounded", "circle"}},
	{Name: "Gradient Ocean", Group: "Horizontal Gradient", FG: "#2193b0", BG: "#FFFFFF", Mask: render.MaskHorizontal, Gradient: []string{"#2193b0", "#6dd5ed"}, Shapes: []string{"square", "rounded", "circle"}},
	{Name: "Gradient Sunset", Group: "Horizontal Gradient", FG: "#f12711", BG: "#FFFFFF", Mask: render.MaskHorizontal, Gradient: []string{"#f12711", "#f5af19"}, Shapes: []string{"square", "rounded", "circle"}},
	{Name: "Gradient Forest", Group: "Horizontal Gradient", FG: "#134e5e", BG: "#FFFFFF", Mask: render.MaskHorizontal, Gradient: []string{"#134e5e", "#71b280"}, Shapes: []string{"square", "rounded", "circle"}},
	{Name: "Gradient Candy", Group: "Horizontal Gradient", FG: "#fc466b", BG: "#FFFFFF", Mask: render.MaskHorizontal, Gradient: []string{"#fc466b", "#3f5efb"}, Shapes: []string{"square", "rounded", "circle"}},
	{Name: "Gradient Mint", Group: "Horizontal Gradient", FG: "#0cebeb", BG: "#FFFFFF", Mask: render.MaskHorizontal, Gradient: []string{"#0cebeb", "#20e3b2"}, Shapes: []string{"square", "rounded", "circle"}},
	{Name: "Gradient Peach", Group: "Horizontal Gradient", FG: "#ed6ea0", BG: "#FFFFFF", Mask: render.MaskHorizontal, Gradient: []string{"#ed6ea0", "#ec8c69"}, Shapes: []string{"square", "rounded", "circle"}},
	{Name: "Gradient Aurora", Group: "Horizontal Gradient", FG: "#7f7fd5", BG: "#FFFFFF", Mask: render.MaskHorizontal, Gradient: []string{"#7f7fd5", "#91eae4"}, Shapes: []string{"square", "rounded", "circle"}},
	{Name: "Gradient Royal", Group: "Horizontal Gradient", FG: "#141e30", BG: "#FFFFFF", Mask: render.MaskHorizontal, Gradient: []string{"#141e30", "#243b55"}, Shapes: []string{"square", "rounded", "circle"}},
	{Name: "Gradient Cherry", Group: "Horizontal Gradient", FG: "#eb3349", BG: "#FFFFFF", Mask: render.MaskHorizontal, Gradient: []string{"#eb3349", "#f45c43"}, Shapes: []string{"square", "rounded", "circle"}},
	{Name: "Gradient Aqua", Group: "Horizontal Gradient", FG: "#13547a", BG: "#FFFFFF", Mask: render.MaskHorizontal, Gradient: []string{"#13547a", "#80d0c7"}, Shapes: []string{"square", "rounded", "circle"}},
	{Name: "Gradient Mango", Group: "Horizontal Gradient", FG: "#ffe259", BG: "#FFFFFF", Mask: render.MaskHorizontal, Gradient: []string{"#ffe259", "#ffa751"}, Shapes: []string{"square", "rounded", "circle"}},
	{Name: "Gradient Grape", Group: "Horizontal Gradient", FG: "#5b247a", BG: "#FFFFFF", Mask: render.MaskHorizontal, Gradient: []string{"#5b247a", "#1bcedf"}, Shapes: []string{"square", "rounded", "circle"}},
	{Name: "Gradient Lush", Group: "Horizontal Gradient", FG: "#56ab2f", BG: "#FFFFFF", Mask: render.MaskHorizontal, Gradient: []string{"#56ab2f", "#a8e063"}, Shapes: []string{"square", "rounded", "circle"}},
	{Name: "Gradient Velvet", Group: "Horizontal Gradient", FG: "#DA4453", BG: "#FFFFFF", Mask: render.MaskHorizontal, Gradient: []string{"#DA4453", "#89216B"}, Shapes: []string{"square", "rounded", "circle"}},
	{Name: "Gradient Cosmic", Group: "Horizontal Gradient", FG: "#ff00cc", BG: "#FFFFFF", Mask: render.MaskHorizontal, Gradient: []string{"#ff00cc", "#333399"}, Shapes: []string{"square", "rounded", "circle"}},

	// Radial Gradient
	{Name: "Radial Fire", Group: "Radial Gradient", FG: "#ff416c", BG: "#FFFFFF", Mask: render.MaskRadial, Gradient: []string{"#ff416c", "#ff4b2b"}, Shapes: []string{"square", "rounded", "circle"}},
	{Name: "Radial Sunset", Group: "Radial Gradient", FG: "#f5576c", BG: "#FFFFFF", Mask: render.MaskRadial, Gradient: []string{"#f5576c", "#f093fb"}, Shapes: []string{"square", "rounded", "circle"}},
	{Name: "Radial Ocean", Group: "Radial Gradient", FG: "#0052D4", BG: "#FFFFFF", Mask: render.MaskRadial, Gradient: []string{"#0052D4", "#6FB1FC"}, Shapes: []string{"square", "rounded", "circle"}},
	{Name: "Radial Earth", Group: "Radial Gradient", FG: "#403B4A", BG: "#FFFFFF", Mask: render.MaskRadial, Gradient: []string{"#403B4A", "#E7E9BB"}, Shapes: []string{"square", "rounded", "circle"}},
	{Name: "Radial Neon", Group: "Radial Gradient", FG: "#00F260", BG: "#FFFFFF", Mask: render.MaskRadial, Gradient: []string{"#00F260", "#0575E6"}, Shapes: []string{"square", "rounded", "circle"}},
	{Name: "Radial Berry", Group: "Radial Gradient", FG: "#8E2DE2", BG: "#FFFFFF", Mask: render.MaskRadial, Gradient: []string{"#8E2DE2", "#4A00E0"}, Shapes: []string{"square", "rounded", "circle"}},

	// Vertical Gradient
	{Name: "Vertical Sky", Group: "Vertical Gradient", FG: "#2980B9", BG: "#FFFFFF", Mask: render.MaskVertical, Gradient: []string{"#2980B9", "#6DD5FA"}, Shapes: []string{"square", "rounded", "circle"}},
	{Name: "Vertical Dusk", Group: "Vertical Gradient", FG: "#2c3e50", BG: "#FFFFFF", Mask: render.MaskVertical, Gradient: []string{"#2c3e50", "#bdc3c7"}, Shapes: []string{"square", "rounded", "circle"}},
	{Name: "Vertical Spring", Group: "Vertical Gradient", FG: "#00b09b", BG: "#FFFFFF", Mask: render.MaskVertical, Gradient: []string{"#00b09b", "#96c93d"}, Shapes: []string{"square", "rounded", "circle"}},
	{Name: "Vertical Twilight", Group: "Vertical Gradient", FG: "#0f0c29", BG: "#FFFFFF", Mask: render.MaskVertical, Gradient: []string{"#0f0c29", "#302b63"}, Shapes: []string{"square", "rounded", "circle"}},
	{Name: "Vertical Sunrise", Group: "Vertical Gradient", FG: "#ff512f", BG: "#FFFFFF", Mask: render.MaskVertical, Gradient: []string{"#ff512f", "#f09819"}, Shapes: []string{"square", "rounded", "circle"}},
	{Name: "Vertical Lavender", Group: "Vertical Gradient", FG: "#834d9b", BG: "#FFFFFF", Mask: render.MaskVertical, Gradient: []string{"#834d9b", "#d04ed6"}, Shapes: []string{"square", "rounded", "circle"}},

	// Neon
	{Name: "Neon Pink", Group: "Neon", FG: "#ff006e", BG: "#0a0a0f", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle", "gapped"}},
	{Name: "Neon Cyan", Group: "Neon", FG: "#00f5d4", BG: "#0a0a0f", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle", "gapped"}},
	{Name: "Neon Green", Group: "Neon", FG: "#39ff14", BG: "#0a0a0f", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle", "gapped"}},
	{Name: "Neon Purple", Group: "Neon", FG: "#bf00ff", BG: "#0a0a0f", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle", "gapped"}},
	{Name: "Neon Orange", Group: "Neon", FG: "#ff9500", BG: "#0a0a0f", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle", "gapped"}},
	{Name: "Neon Yellow", Group: "Neon", FG: "#fff01f", BG: "#0a0a0f", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle", "gapped"}},
	{Name: "Neon Red", Group: "Neon", FG: "#ff073a", BG: "#0a0a0f", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle", "gapped"}},
	{Name: "Neon Blue", Group: "Neon", FG: "#00b4ff", BG: "#0a0a0f", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle", "gapped"}},

	// Retro
	{Name: "Retro Terminal", Group: "Retro", FG: "#00ff41", BG: "#0d0208", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "gapped"}},
	{Name: "Retro Amber", Group: "Retro", FG: "#ffb000", BG: "#1a1100", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "gapped"}},
	{Name: "Retro Blue CRT", Group: "Retro", FG: "#00b4d8", BG: "#03071e", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "gapped"}},
	{Name: "Retro Sepia", Group: "Retro", FG: "#704214", BG: "#f5e6c8", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "gapped"}},
	{Name: "Retro Cream", Group: "Retro", FG: "#5c4033", BG: "#fffdd0", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "gapped"}},

	// Elegant
	{Name: "Elegant Gold", Group: "Elegant", FG: "#d4af37", BG: "#1a1a1a", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle"}},
	{Name: "Elegant Silver", Group: "Elegant", FG: "#c0c0c0", BG: "#1a1a1a", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle"}},
	{Name: "Elegant Rose Gold", Group: "Elegant", FG: "#b76e79", BG: "#1a1a1a", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle"}},
	{Name: "Elegant Bronze", Group: "Elegant", FG: "#cd7f32", BG: "#1a1a1a", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle"}},
	{Name: "Elegant Platinum", Group: "Elegant", FG: "#e5e4e2", BG: "#1a1a1a", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle"}},
	{Name: "Elegant Copper", Group: "Elegant", FG: "#b87333", BG: "#1a1a1a", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle"}},
	{Name: "Elegant Champagne", Group: "Elegant", FG: "#f7e7ce", BG: "#2d2d2d", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle"}},

	// Pastel
	{Name: "Soft Purple", Group: "Pastel", FG: "#a78bfa", BG: "#FFFFFF", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle"}},
	{Name: "Soft Blue", Group: "Pastel", FG: "#93c5fd", BG: "#FFFFFF", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle"}},
	{Name: "Soft Pink", Group: "Pastel", FG: "#f9a8d4", BG: "#FFFFFF", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle"}},
	{Name: "Soft Mint", Group: "Pastel", FG: "#6ee7b7", BG: "#FFFFFF", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle"}},
	{Name: "Soft Coral", Group: "Pastel", FG: "#fca5a5", BG: "#FFFFFF", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle"}},
	{Name: "Soft Lavender", Group: "Pastel", FG: "#c4b5fd", BG: "#FFFFFF", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle"}},
	{Name: "Soft Peach", Group: "Pastel", FG: "#fdba74", BG: "#FFFFFF", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle"}},
	{Name: "Soft Sky", Group: "Pastel", FG: "#7dd3fc", BG: "#FFFFFF", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle"}},
	{Name: "Soft Rose", Group: "Pastel", FG: "#fda4af", BG: "#FFFFFF", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle"}},
	{Name: "Soft Lime", Group: "Pastel", FG: "#bef264", BG: "#FFFFFF", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle"}},

	// Dark Mode
	{Name: "Dark Slate", Group: "Dark Mode", FG: "#94a3b8", BG: "#0f172a", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle", "gapped"}},
	{Name: "Dark Teal", Group: "Dark Mode", FG: "#2dd4bf", BG: "#0f172a", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle", "gapped"}},
	{Name: "Dark Berry", Group: "Dark Mode", FG: "#f472b6", BG: "#0f172a", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle", "gapped"}},
	{Name: "Dark Sky", Group: "Dark Mode", FG: "#38bdf8", BG: "#0f172a", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle", "gapped"}},
	{Name: "Dark Amber", Group: "Dark Mode", FG: "#fbbf24", BG: "#0f172a", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle", "gapped"}},
	{Name: "Dark Emerald", Group: "Dark Mode", FG: "#34d399", BG: "#0f172a", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle", "gapped"}},
	{Name: "Dark Violet", Group: "Dark Mode", FG: "#a78bfa", BG: "#0f172a", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle", "gapped"}},
	{Name: "Dark Rose", Group: "Dark Mode", FG: "#fb7185", BG: "#0f172a", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle", "gapped"}},

	// Vibrant
	{Name: "Vibrant Red", Group: "Vibrant", FG: "#ef4444", BG: "#FFFFFF", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle", "gapped"}},
	{Name: "Vibrant Blue", Group: "Vibrant", FG: "#3b82f6", BG: "#FFFFFF", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle", "gapped"}},
	{Name: "Vibrant Green", Group: "Vibrant", FG: "#22c55e", BG: "#FFFFFF", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle", "gapped"}},
	{Name: "Vibrant Yellow", Group: "Vibrant", FG: "#eab308", BG: "#FFFFFF", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle", "gapped"}},
	{Name: "Vibrant Purple", Group: "Vibrant", FG: "#8b5cf6", BG: "#FFFFFF", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle", "gapped"}},
	{Name: "Vibrant Orange", Group: "Vibrant", FG: "#f97316", BG: "#FFFFFF", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle", "gapped"}},
	{Name: "Vibrant Cyan", Group: "Vibrant", FG: "#06b6d4", BG: "#FFFFFF", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle", "gapped"}},
	{Name: "Vibrant Fuchsia", Group: "Vibrant", FG: "#d946ef", BG: "#FFFFFF", Mask: render.MaskSolid, Shapes: []string{"square", "rounded", "circle", "gapped"}},
}
