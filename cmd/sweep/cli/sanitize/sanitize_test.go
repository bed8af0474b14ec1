package sanitize

import (
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		lang string
		in   string
		want string
	}{
		{
			name: "javascript console statement",
			lang: "javascript",
			in:   "function f() {\n  console.log(\"hi\");\n  return 1;\n}\n",
			want: "function f() {\n  return 1;\n}\n",
		},
		{
			name: "javascript trailing line comment keeps code",
			lang: "javascript",
			in:   "const a = 2; // twice\n",
			want: "const a = 2;\n",
		},
		{
			name: "javascript whole-line comment removed with newline",
			lang: "javascript",
			in:   "// setup\nconst a = 2;\n",
			want: "const a = 2;\n",
		},
		{
			name: "javascript block comment inline",
			lang: "javascript",
			in:   "int(); /* note */ done();\n",
			want: "int(); done();\n",
		},
		{
			name: "javascript block comment whole lines",
			lang: "javascript",
			in:   "/*\n * header\n */\ncode();\n",
			want: "code();\n",
		},
		{
			name: "javascript unterminated block comment matches to end",
			lang: "javascript",
			in:   "code();\n/* oops\nmore text",
			want: "code();\n",
		},
		{
			name: "typescript console variants",
			lang: "typescript",
			in:   "console.warn(x);\nconsole.error(y);\nwork();\n",
			want: "work();\n",
		},
		{
			name: "python print and hash comment",
			lang: "python",
			in:   "# debug below\nprint(value)\nx = 1  # keep x\n",
			want: "x = 1\n",
		},
		{
			name: "java system out",
			lang: "java",
			in:   "int x = 1;\nSystem.out.println(\"x=\" + x);\nSystem.err.print(x);\n",
			want: "int x = 1;\n",
		},
		{
			name: "c printf",
			lang: "c",
			in:   "int x = 1;\nprintf(\"x=%d\\n\", x);\n",
			want: "int x = 1;\n",
		},
		{
			name: "cpp cout",
			lang: "cpp",
			in:   "std::cout << x << std::endl;\nreturn x;\n",
			want: "return x;\n",
		},
		{
			name: "php echo and var_dump",
			lang: "php",
			in:   "$x = 1;\necho $x;\nvar_dump($x);\n",
			want: "$x = 1;\n",
		},
		{
			name: "ruby puts and hash comment",
			lang: "ruby",
			in:   "# note\nputs value\nx = 1\n",
			want: "x = 1\n",
		},
		{
			name: "ruby begin end block",
			lang: "ruby",
			in:   "=begin\nscratch notes\n=end\nx = 1\n",
			want: "x = 1\n",
		},
		{
			name: "ruby identifier starting with p survives",
			lang: "ruby",
			in:   "parse(input)\n",
			want: "parse(input)\n",
		},
		{
			name: "ruby assignment to p survives",
			lang: "ruby",
			in:   "p = 5\nq = p + 1\n",
			want: "p = 5\nq = p + 1\n",
		},
		{
			name: "ruby p with argument removed",
			lang: "ruby",
			in:   "p value\nx = 1\n",
			want: "x = 1\n",
		},
		{
			name: "javascript print after code removes whole line",
			lang: "javascript",
			in:   "x = 1; console.log(x);\ny = 2;\n",
			want: "y = 2;\n",
		},
		{
			name: "unknown language passes through",
			lang: "plaintext",
			in:   "just some text // not code\n",
			want: "just some text // not code\n",
		},
		{
			name: "blank line collapse",
			lang: "plaintext",
			in:   "a\n\n\n\nb\n",
			want: "a\n\nb\n",
		},
		{
			name: "trailing whitespace stripped",
			lang: "plaintext",
			in:   "a  \nb\t\n",
			want: "a\nb\n",
		},
		{
			name: "leading blank lines stripped",
			lang: "plaintext",
			in:   "\n\nx\n",
			want: "x\n",
		},
		{
			name: "zero width and BOM stripped",
			lang: "plaintext",
			in:   "\uFEFFa\u200Bb\n",
			want: "ab\n",
		},
		{
			name: "zero width cannot shield whitespace from normalization",
			lang: "plaintext",
			in:   " \u200B\nx",
			want: "x",
		},
		{
			name: "zero width inside a debug call",
			lang: "javascript",
			in:   "conso\u200Ble.log(1);\n",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.in, tt.lang)
			if got != tt.want {
				t.Errorf("Sanitize(%q, %q) = %q, want %q", tt.in, tt.lang, got, tt.want)
			}
		})
	}
}

// A debug call anywhere on a line takes the whole line with it, even when it
// hides behind a comment marker after live code.
func TestSanitize_CommentedOutPrint(t *testing.T) {
	got := Sanitize("x = 1; // console.log(x);", "javascript")

	if got != "" {
		t.Errorf("Sanitize() = %q, want the entire line removed", got)
	}
}

// An inline block comment in front of a call must not hide it from the print
// pass: removal has to reach the same result in one pass as in two.
func TestSanitize_BlockCommentBeforePrint(t *testing.T) {
	in := "/* a */console.log(1);\n"

	once := Sanitize(in, "javascript")
	if once != "" {
		t.Errorf("Sanitize(%q) = %q, want %q", in, once, "")
	}
	if twice := Sanitize(once, "javascript"); twice != once {
		t.Errorf("Sanitize not idempotent: first %q, second %q", once, twice)
	}
}

func TestSanitize_DocstringThenPrint(t *testing.T) {
	in := "\"\"\"\ndebug notes\n\"\"\"\nprint(\"hi\")\n"

	got := Sanitize(in, "python")

	if strings.TrimSpace(got) != "" {
		t.Errorf("Sanitize() = %q, want empty or whitespace-only output", got)
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	inputs := []struct {
		lang string
		in   string
	}{
		{"javascript", "a();\nconsole.log(1);\n\n\n\n// done\nb(); // trailing\n/* block */\n"},
		{"javascript", "/* a */console.log(1);\nx = 1; // console.log(x);\n"},
		{"python", "print(x)\n'''\ndoc\n'''\n# c\ny = 2  \n"},
		{"ruby", "puts x\n=begin\nn\n=end\ny = 1\n"},
		{"plaintext", "a\n \n\n\nb  \n\n\n\nc\n"},
		{"plaintext", " \u200B\nx"},
	}

	for _, tt := range inputs {
		once := Sanitize(tt.in, tt.lang)
		twice := Sanitize(once, tt.lang)
		if once != twice {
			t.Errorf("Sanitize not idempotent for %s input %q: first %q, second %q", tt.lang, tt.in, once, twice)
		}
	}
}

func TestSanitize_NeverGrows(t *testing.T) {
	inputs := []struct {
		lang string
		in   string
	}{
		{"javascript", "console.log(1);\ncode();\n"},
		{"python", "print(1)\n# c\n"},
		{"plaintext", "a\n\n\n\n\nb\n"},
		{"plaintext", ""},
		{"java", "System.out.println(x);"},
	}

	for _, tt := range inputs {
		got := Sanitize(tt.in, tt.lang)
		if len(got) > len(tt.in) {
			t.Errorf("Sanitize(%q, %q) grew output: %d > %d", tt.in, tt.lang, len(got), len(tt.in))
		}
	}
}

func TestSanitize_UnknownLanguageIsNormalizeOnly(t *testing.T) {
	in := "text  \n\n\n\nmore // looks like a comment\n"

	if got, want := Sanitize(in, "brainfuck"), Normalize(in); got != want {
		t.Errorf("Sanitize() = %q, want Normalize() result %q", got, want)
	}
}
